package sigfile

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	sigerr "sigcheck/internal/errors"
	"sigcheck/internal/model"
)

// Load reads a snapshot from disk. Files ending in .gz are transparently
// decompressed.
func Load(path string, opts ParseOptions) (*model.Codebase, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sigerr.Newf(sigerr.FileNotFound, "snapshot %s does not exist", path)
		}
		return nil, sigerr.Wrap(sigerr.InternalError, "opening snapshot", err).At(path, 0)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, sigerr.Wrap(sigerr.ParseError, "decompressing snapshot", err).At(path, 0)
		}
		defer gz.Close()
		r = gz
	}
	return Parse(r, path, opts)
}

// Save writes a snapshot in canonical form, gzip-compressed when the path
// ends in .gz.
func Save(path string, cb *model.Codebase) error {
	f, err := os.Create(path)
	if err != nil {
		return sigerr.Wrap(sigerr.InternalError, "creating snapshot", err).At(path, 0)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}
	if err := Write(w, cb); err != nil {
		return sigerr.Wrap(sigerr.InternalError, "writing snapshot", err).At(path, 0)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return sigerr.Wrap(sigerr.InternalError, "finishing snapshot", err).At(path, 0)
		}
	}
	return f.Close()
}
