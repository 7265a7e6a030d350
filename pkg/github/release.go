package github

import (
	"fmt"

	"github.com/jiahut/relget/internal/json"
)

// Asset is a single downloadable file attached to a release. Instances
// are taken verbatim from the release payload and never mutated.
type Asset struct {
	Name        string
	Size        int64
	DownloadURL string
}

// Label renders the asset the way selectors present it, for example
// "deno-x86_64-apple-darwin.zip (34.5 MB)". Labels map back to their
// asset by exact string match.
func (a Asset) Label() string {
	return fmt.Sprintf("%s (%s)", a.Name, FormatSize(a.Size))
}

// Release is a snapshot of a repository's latest release at fetch time.
type Release struct {
	Tag    string
	Title  string
	Assets []Asset
}

// decodeRelease reads the fields we care about from a GitHub release
// payload, skipping over everything else. The payload carries plenty of
// uploader metadata per asset that we'd otherwise allocate for.
func decodeRelease(data []byte) (*Release, error) {
	iter := json.Iter()
	json.ResetBytes(iter, data)

	var release Release
	for field := iter.ReadObject(); field != ""; field = iter.ReadObject() {
		switch field {
		case "tag_name":
			release.Tag = iter.ReadString()
		case "name":
			release.Title = iter.ReadString()
		case "assets":
			for iter.ReadArray() {
				var asset Asset
				for assetField := iter.ReadObject(); assetField != ""; assetField = iter.ReadObject() {
					switch assetField {
					case "name":
						asset.Name = iter.ReadString()
					case "size":
						asset.Size = iter.ReadInt64()
					case "browser_download_url":
						asset.DownloadURL = iter.ReadString()
					default:
						iter.Skip()
					}
				}
				release.Assets = append(release.Assets, asset)
			}
		default:
			iter.Skip()
		}
	}

	if iter.Error != nil {
		return nil, fmt.Errorf("error parsing release json: %w", iter.Error)
	}

	return &release, nil
}
