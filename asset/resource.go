// Package asset resolves a mesh or texture path into a readable stream,
// transparently handling both local files and http(s) URLs so a scene can
// reference either without its loader caring which.
package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cosmcif/raytracer/log"
)

var logger = log.New("asset")

// Resource wraps a streamable local file or remote (http/https) asset, the
// entry point mesh.LoadFile and texture.LoadBitmap both resolve their path
// argument through.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Path returns the resolved path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// RemotePath returns the base name (without leading /) of a remote
// resource's URL, or the same value as Path for a local one.
func (r *Resource) RemotePath() string {
	if r.IsRemote() {
		return filepath.Base(r.url.Path)
	}
	return r.Path()
}

// IsRemote reports whether the resource is streamed over http/https rather
// than read from local disk.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// NewResource opens pathToResource for reading. If relTo is given and
// pathToResource has no scheme of its own, the new resource's path is
// resolved relative to relTo's base path, so a mesh referencing a sibling
// texture by relative path works whether the mesh itself came from local
// disk or an http(s) URL. The caller must close the returned Resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	// Replace backslashes with forward slashes and try parsing as a URL
	url, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	// If this is a relative url, clone parent url and adjust its path
	if url.Scheme == "" && relTo != nil {
		path := url.Path
		url, _ = url.Parse(relTo.url.String())
		prefix := url.Path
		if url.Scheme == "" {
			prefix, err = filepath.Abs(relTo.url.String())
			if err != nil {
				return nil, fmt.Errorf("resource: could not detect abs path for %s; %s", relTo.url.String(), err.Error())
			}
		}
		url.Path = filepath.Dir(prefix) + "/" + path
	}

	var reader io.ReadCloser
	switch url.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(url.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		logger.Debugf("fetching remote resource %q", url.String())
		resp, err := http.Get(url.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", url.String(), err)
		}
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", url.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", url.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        url,
	}, nil
}
