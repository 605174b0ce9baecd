package restclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strconv"
	"time"
)

// File is one binary part of a multipart payload.
type File struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Form accumulates a multipart/form-data body. Scalar fields are flattened
// with the upstream's bracket convention: nested objects become key[sub],
// arrays become key[0], key[1], ... Files repeat under their key so an
// array of uploads arrives server-side as repeated parts.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key   string
	value string
}

type formFile struct {
	key  string
	file File
}

// NewForm returns an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// AddFile appends one file part under key. Repeated calls with the same key
// produce repeated parts.
func (f *Form) AddFile(key string, file File) {
	f.files = append(f.files, formFile{key: key, file: file})
}

// AddFiles appends every file under the same key.
func (f *Form) AddFiles(key string, files []File) {
	for _, file := range files {
		f.AddFile(key, file)
	}
}

// AddField flattens value under key. Accepted shapes: nil, string, bool,
// integers, floats, time.Time, File, []File, []string, map[string]string
// and map[string]any / []any of the above. Anything else is rejected so an
// unknown payload shape fails loudly instead of being stringified.
func (f *Form) AddField(key string, value any) error {
	switch v := value.(type) {
	case nil:
		f.append(key, "")
	case string:
		f.append(key, v)
	case bool:
		f.append(key, strconv.FormatBool(v))
	case int:
		f.append(key, strconv.Itoa(v))
	case int64:
		f.append(key, strconv.FormatInt(v, 10))
	case float64:
		f.append(key, strconv.FormatFloat(v, 'f', -1, 64))
	case time.Time:
		f.append(key, v.UTC().Format(time.RFC3339))
	case File:
		f.AddFile(key, v)
	case []File:
		f.AddFiles(key, v)
	case []string:
		for i, s := range v {
			f.append(fmt.Sprintf("%s[%d]", key, i), s)
		}
	case []any:
		for i, item := range v {
			if err := f.AddField(fmt.Sprintf("%s[%d]", key, i), item); err != nil {
				return err
			}
		}
	case map[string]string:
		for _, sub := range sortedKeys(v) {
			f.append(fmt.Sprintf("%s[%s]", key, sub), v[sub])
		}
	case map[string]any:
		for _, sub := range sortedKeys(v) {
			if err := f.AddField(fmt.Sprintf("%s[%s]", key, sub), v[sub]); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("multipart field %q: unsupported type %T", key, value)
	}
	return nil
}

func (f *Form) append(key, value string) {
	f.fields = append(f.fields, formField{key: key, value: value})
}

// Encode writes the accumulated parts and returns the content type
// (with boundary) and the body.
func (f *Form) Encode() (string, *bytes.Buffer, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return "", nil, fmt.Errorf("failed to write field %q: %w", field.key, err)
		}
	}

	for _, part := range f.files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, part.key, part.file.Filename))
		contentType := part.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		pw, err := w.CreatePart(header)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create file part %q: %w", part.key, err)
		}
		if _, err := io.Copy(pw, part.file.Content); err != nil {
			return "", nil, fmt.Errorf("failed to write file part %q: %w", part.key, err)
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return w.FormDataContentType(), body, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
