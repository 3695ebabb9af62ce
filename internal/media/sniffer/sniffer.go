// Package sniffer identifies property photos by their leading bytes instead of
// the browser-declared content type.
package sniffer

import (
	"bytes"
	"errors"
	"net/textproto"
	"strings"
)

type MediaType string

const (
	TypeJPEG MediaType = "jpeg"
	TypePNG  MediaType = "png"
	TypeGIF  MediaType = "gif"
	TypeWEBP MediaType = "webp"
	TypeAVIF MediaType = "avif"
	TypeSVG  MediaType = "svg"
)

var ErrUnknownType = errors.New("unknown media type")

var mimeTypes = map[MediaType]string{
	TypeJPEG: "image/jpeg",
	TypePNG:  "image/png",
	TypeGIF:  "image/gif",
	TypeWEBP: "image/webp",
	TypeAVIF: "image/avif",
	TypeSVG:  "image/svg+xml",
}

type Result struct {
	Type MediaType
	MIME string
}

// Extension is the file extension used for staged copies.
func (r Result) Extension() string {
	if r.Type == TypeJPEG {
		return "jpg"
	}
	return string(r.Type)
}

const headSize = 512

// Detect inspects at most the first 512 bytes of data.
func Detect(data []byte) (Result, error) {
	head := data
	if len(head) > headSize {
		head = head[:headSize]
	}
	return DetectHead(head)
}

func DetectHead(head []byte) (Result, error) {
	if len(head) == 0 {
		return Result{}, ErrUnknownType
	}

	var t MediaType
	switch {
	case isJPEG(head):
		t = TypeJPEG
	case isPNG(head):
		t = TypePNG
	case isGIF(head):
		t = TypeGIF
	case isWEBP(head):
		t = TypeWEBP
	case isAVIF(head):
		t = TypeAVIF
	case isSVG(head):
		t = TypeSVG
	default:
		return Result{}, ErrUnknownType
	}
	return Result{Type: t, MIME: mimeTypes[t]}, nil
}

func isJPEG(head []byte) bool {
	return len(head) > 3 &&
		head[0] == 0xff &&
		head[1] == 0xd8 &&
		head[2] == 0xff
}

func isPNG(head []byte) bool {
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	return bytes.HasPrefix(head, pngMagic)
}

func isGIF(head []byte) bool {
	return bytes.HasPrefix(head, []byte("GIF87a")) || bytes.HasPrefix(head, []byte("GIF89a"))
}

func isWEBP(head []byte) bool {
	return len(head) >= 12 &&
		bytes.Equal(head[:4], []byte("RIFF")) &&
		bytes.Equal(head[8:12], []byte("WEBP"))
}

func isAVIF(head []byte) bool {
	if len(head) < 12 {
		return false
	}
	return string(head[4:8]) == "ftyp" && bytes.Contains(head[8:], []byte("avif"))
}

func isSVG(head []byte) bool {
	trimmed := strings.TrimSpace(string(head))
	if strings.HasPrefix(trimmed, "<svg") {
		return true
	}
	return strings.HasPrefix(trimmed, "<?xml") && strings.Contains(trimmed, "<svg")
}

// DeclaredType is the media type of a multipart part's Content-Type header,
// without parameters.
func DeclaredType(header textproto.MIMEHeader) string {
	contentType := header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// Consistent reports whether a declared content type agrees with the sniffed
// one. Browsers send empty or generic types for some files; those pass.
func Consistent(declared string, r Result) bool {
	switch declared {
	case "", "application/octet-stream":
		return true
	case "image/jpg", "image/pjpeg":
		return r.Type == TypeJPEG
	}
	return declared == r.MIME
}
