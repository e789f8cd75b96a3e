package vob

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Concatenate streams each fragment's bytes in order into dst and returns
// the number of bytes written. No transformation happens: the output is the
// byte-for-byte join of the inputs. On any error dst is removed so a partial
// stream never survives.
func Concatenate(ctx context.Context, files []File, dst string) (int64, error) {
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create concatenated stream: %w", err)
	}

	written, err := copyAll(ctx, files, out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		return 0, err
	}
	return written, nil
}

func copyAll(ctx context.Context, files []File, out io.Writer) (int64, error) {
	var written int64
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		in, err := os.Open(file.Path)
		if err != nil {
			return written, fmt.Errorf("open fragment: %w", err)
		}
		n, err := io.Copy(out, in)
		written += n
		if closeErr := in.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return written, fmt.Errorf("append %s: %w", file.Path, err)
		}
	}
	return written, nil
}
