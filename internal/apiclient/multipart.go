package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// ImageFile is one image attached to a property write.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PropertyInput is the multipart body of a property create or update. Numeric
// fields stay strings: they are forwarded exactly as the administrator typed
// them.
type PropertyInput struct {
	Title            string
	Price            string
	Location         string
	BHK              string
	CarpetArea       string
	BuiltUpArea      string
	FurnishingStatus string
	ReraApproved     bool
	ReraID           string
	Ownership        string
	CompletionStatus string
	Builder          string
	Amenities        []string
	PossessionDate   string
	Images           []ImageFile
}

func (p PropertyInput) fields() [][2]string {
	return [][2]string{
		{"title", p.Title},
		{"price", p.Price},
		{"location", p.Location},
		{"bhk", p.BHK},
		{"carpetArea", p.CarpetArea},
		{"builtUpArea", p.BuiltUpArea},
		{"furnishingStatus", p.FurnishingStatus},
		{"reraApproved", strconv.FormatBool(p.ReraApproved)},
		{"reraId", p.ReraID},
		{"ownership", p.Ownership},
		{"completionStatus", p.CompletionStatus},
		{"builder", p.Builder},
		{"amenities", strings.Join(p.Amenities, ",")},
		{"possessionDate", p.PossessionDate},
	}
}

func multipartRequest(operation, method, path string, input PropertyInput) (request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range input.fields() {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return request{}, fmt.Errorf("%s: write field %s: %w", operation, field[0], err)
		}
	}

	for i, img := range input.Images {
		name := img.Filename
		if name == "" {
			name = fmt.Sprintf("image-%d", i+1)
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, name))
		contentType := img.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return request{}, fmt.Errorf("%s: create image part: %w", operation, err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return request{}, fmt.Errorf("%s: write image part: %w", operation, err)
		}
	}

	if err := w.Close(); err != nil {
		return request{}, fmt.Errorf("%s: close multipart: %w", operation, err)
	}

	return request{
		operation:   operation,
		method:      method,
		path:        path,
		body:        &buf,
		contentType: w.FormDataContentType(),
	}, nil
}
