package capture

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

type Source string

const (
	SourceCamera  Source = "camera"
	SourceLibrary Source = "library"
)

// Options mirrors the picker configuration consumed on device: a mixed
// photo/video capture at a 0-1 quality scale, optionally saved back to the
// photo library.
type Options struct {
	MediaType    string
	Quality      float64
	SaveToPhotos bool
}

type Asset struct {
	URI string
}

// Result is the single asynchronous outcome of a launch: cancelled, failed
// with a code and message, or a non-empty asset list. Callers consume only the
// first asset.
type Result struct {
	Cancelled    bool
	ErrorCode    string
	ErrorMessage string
	Assets       []Asset
}

func (r Result) Failed() bool {
	return r.ErrorCode != ""
}

type Provider interface {
	Launch(ctx context.Context, source Source, opts Options) Result
}

var mediaExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".mp4":  true,
}

// DirProvider backs both capture sources with directories on disk. The camera
// roll receives fresh captures, so camera mode returns its newest media file.
// Library mode reports every media file in the library, newest first.
type DirProvider struct {
	CameraRollDir string
	LibraryDir    string
	Log           zerolog.Logger
}

func (p DirProvider) Launch(ctx context.Context, source Source, opts Options) Result {
	switch source {
	case SourceCamera:
		return p.launchCamera(opts)
	case SourceLibrary:
		return p.launchLibrary()
	default:
		return Result{ErrorCode: "unknown_source", ErrorMessage: string(source)}
	}
}

func (p DirProvider) launchCamera(opts Options) Result {
	files, err := listMediaFiles(p.CameraRollDir)
	if err != nil {
		return Result{ErrorCode: "camera_unavailable", ErrorMessage: err.Error()}
	}
	if len(files) == 0 {
		return Result{Cancelled: true}
	}

	captured := files[0]
	if opts.SaveToPhotos {
		if err := copyIntoDir(captured, p.LibraryDir); err != nil {
			// Best effort, the capture itself still succeeds.
			p.Log.Warn().Err(err).Str("uri", captured).Msg("could not save capture to library")
		}
	}
	return Result{Assets: []Asset{{URI: captured}}}
}

func (p DirProvider) launchLibrary() Result {
	files, err := listMediaFiles(p.LibraryDir)
	if err != nil {
		return Result{ErrorCode: "library_unavailable", ErrorMessage: err.Error()}
	}
	if len(files) == 0 {
		return Result{Cancelled: true}
	}

	assets := make([]Asset, 0, len(files))
	for _, f := range files {
		assets = append(assets, Asset{URI: f})
	}
	return Result{Assets: assets}
}

// listMediaFiles returns recognized media files in dir, newest first.
func listMediaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		path    string
		modTime int64
	}
	candidates := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !mediaExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].modTime != candidates[j].modTime {
			return candidates[i].modTime > candidates[j].modTime
		}
		return candidates[i].path > candidates[j].path
	})

	files := make([]string, 0, len(candidates))
	for _, c := range candidates {
		files = append(files, c.path)
	}
	return files, nil
}

func copyIntoDir(path, dir string) error {
	if dir == "" {
		return nil
	}
	dst := filepath.Join(dir, filepath.Base(path))
	if dst == path {
		return nil
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
