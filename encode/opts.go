package encode

import "errors"

var ErrEncoding = errors.New("encoding error")

type EncodeOption func(*EncState)

// Indent enables multi-line output with the given indent width.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
