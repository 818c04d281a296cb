package checks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// CompressResult is the outcome of compressing one web file.
type CompressResult struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Size   int64  `json:"size"`
	// CompressedSize is the size of the written .gz file.
	CompressedSize int64 `json:"compressed_size"`
	Err            error `json:"-"`
}

// CompressFile writes a gzip copy of source to target.
// A partially written target is removed when compression fails.
func CompressFile(source, target string) (res CompressResult, err error) {
	res = CompressResult{Source: source, Target: target}

	in, err := os.Open(source)
	if err != nil {
		return res, err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return res, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(target)
		}
	}()

	zw, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return res, err
	}
	zw.Name = filepath.Base(source)

	if res.Size, err = io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return res, err
	}
	if err = zw.Close(); err != nil {
		return res, err
	}

	info, err := out.Stat()
	if err != nil {
		return res, err
	}
	res.CompressedSize = info.Size()
	return res, nil
}

// CompressRequired compresses every required file present in dataDir into a
// sibling .gz file. A failing file is logged and does not stop the others.
func CompressRequired(dataDir string, logger *zap.Logger) []CompressResult {
	var results []CompressResult
	for _, name := range RequiredFiles {
		source := filepath.Join(dataDir, name)
		if !exists(source) {
			continue
		}
		target := source + GzipSuffix

		res, err := CompressFile(source, target)
		if err != nil {
			res.Err = err
			logger.Error(fmt.Sprintf("Failed to compress %s", source), zap.Error(err))
		} else {
			logger.Info(fmt.Sprintf("Compressed: %s -> %s", source, target),
				zap.Int64("size", res.Size),
				zap.Int64("compressed_size", res.CompressedSize),
			)
		}
		results = append(results, res)
	}
	return results
}
