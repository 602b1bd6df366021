package readability

import (
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// decodeHTMLBytes turns raw fetched bytes into UTF-8 text, preferring the
// charset declared in an HTTP Content-Type header and falling back to
// statistical detection when the header is absent, empty, or unrecognized.
func decodeHTMLBytes(raw []byte, contentType string) (string, error) {
	if enc := charsetFromContentType(contentType); enc != nil {
		return decodeWith(raw, enc)
	}

	det := chardet.NewTextDetector()
	result, err := det.DetectBest(raw)
	if err == nil && result != nil {
		if enc, err := htmlindex.Get(result.Charset); err == nil {
			return decodeWith(raw, enc)
		}
	}

	return string(raw), nil
}

func charsetFromContentType(contentType string) encoding.Encoding {
	if contentType == "" {
		return nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}

	charset := strings.TrimSpace(params["charset"])
	if charset == "" {
		return nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil
	}

	return enc
}

func decodeWith(raw []byte, enc encoding.Encoding) (string, error) {
	reader := enc.NewDecoder().Reader(strings.NewReader(string(raw)))
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decode with detected charset: %w", err)
	}
	return string(decoded), nil
}
