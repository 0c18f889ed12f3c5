// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzpi

import (
	"io"

	"github.com/sirupsen/logrus"
)

// defaultBufSize is the bufio.Reader/bufio.Writer chunk size used when the
// caller's options don't override it.
const defaultBufSize = 32 * 1024

// CompressOptions configures Compress and CompressBytes.
type CompressOptions struct {
	// BufSize sizes the internal bufio.Reader/bufio.Writer. Zero selects
	// defaultBufSize.
	BufSize int
	// Logger receives lifecycle events (stream start and completion) at
	// DebugLevel and errors at ErrorLevel. Nil disables logging.
	Logger *logrus.Logger
	// MaxInputSize limits how many bytes CompressBytes' underlying read may
	// consume. Zero means no limit. Only meaningful for CompressBytes.
	MaxInputSize int
}

// DefaultCompressOptions returns the zero-value options (default buffer
// size, no logging, no input limit).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

func (o *CompressOptions) orDefault() *CompressOptions {
	if o == nil {
		return &CompressOptions{}
	}
	return o
}

func (o *CompressOptions) bufSize() int {
	if o.BufSize > 0 {
		return o.BufSize
	}
	return defaultBufSize
}

func (o *CompressOptions) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return silentLogger
}

// DecompressOptions configures Decompress and DecompressBytes.
type DecompressOptions struct {
	// BufSize sizes the internal bufio.Reader/bufio.Writer. Zero selects
	// defaultBufSize.
	BufSize int
	// Logger receives lifecycle events the same way CompressOptions.Logger
	// does. Nil disables logging.
	Logger *logrus.Logger
	// MaxInputSize limits how many bytes DecompressBytes' underlying read
	// may consume. Zero means no limit. Only meaningful for DecompressBytes.
	MaxInputSize int
}

// DefaultDecompressOptions returns the zero-value options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

func (o *DecompressOptions) orDefault() *DecompressOptions {
	if o == nil {
		return &DecompressOptions{}
	}
	return o
}

func (o *DecompressOptions) bufSize() int {
	if o.BufSize > 0 {
		return o.BufSize
	}
	return defaultBufSize
}

func (o *DecompressOptions) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return silentLogger
}

// silentLogger is used whenever the caller supplies no Logger; its output
// is discarded so library callers never see unsolicited log lines.
var silentLogger = newSilentLogger()

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
