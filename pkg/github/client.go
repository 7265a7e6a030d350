package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
)

const defaultAPIBase = "https://api.github.com"

// userAgent identifies us against the GitHub API, which rejects requests
// without a User-Agent header.
const userAgent = "relget (+https://github.com/jiahut/relget)"

// Repo identifies a GitHub repository by owner and name.
type Repo struct {
	Owner string
	Name  string
}

func (repo Repo) String() string {
	return repo.Owner + "/" + repo.Name
}

var repoURLRegex = regexp.MustCompile(`github\.com/([^/\s]+)/([^/\s]+)`)

// ParseRepoURL extracts owner and repository from anything containing a
// "github.com/<owner>/<repo>" fragment. The scheme and trailing path
// segments (such as "/releases") are optional, SSH remotes of the form
// "git@github.com:owner/repo.git" are accepted as well.
func ParseRepoURL(url string) (Repo, error) {
	// SSH remotes separate host and path with a colon.
	url = strings.Replace(url, "github.com:", "github.com/", 1)

	match := repoURLRegex.FindStringSubmatch(url)
	if match == nil {
		return Repo{}, fmt.Errorf("invalid repository URL: %q", url)
	}

	return Repo{
		Owner: match[1],
		Name:  strings.TrimSuffix(match[2], ".git"),
	}, nil
}

// Client talks to the GitHub REST API. It holds no mutable state and is
// safe to share.
type Client struct {
	apiBase    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client against the public GitHub API. The base URL
// can be overridden via RELGET_API_BASE and a GITHUB_TOKEN is passed on
// when present, lifting the unauthenticated rate limit.
func NewClient() *Client {
	apiBase := strings.TrimRight(os.Getenv("RELGET_API_BASE"), "/")
	if apiBase == "" {
		apiBase = defaultAPIBase
	}

	return &Client{
		apiBase:    apiBase,
		token:      os.Getenv("GITHUB_TOKEN"),
		httpClient: http.DefaultClient,
	}
}

// LatestRelease fetches the metadata of the repository's latest release.
// The call blocks until the API responded; there is no retry.
func (client *Client) LatestRelease(ctx context.Context, repo Repo) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", client.apiBase, repo.Owner, repo.Name)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	request.Header.Set("Accept", "application/vnd.github.v3+json")
	request.Header.Set("User-Agent", userAgent)
	if client.token != "" {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error requesting release: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("github api returned %d (%s) for %s",
			response.StatusCode, http.StatusText(response.StatusCode), url)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return decodeRelease(body)
}
