package transport

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Request describes a single HTTP dispatch. Mode and Credentials are
// advisory flags carried alongside the request so that callers layering
// options on top of the transport can observe them; the transport itself
// forwards the request regardless of their values.
type Request struct {
	Method      string
	URL         string
	Headers     map[string]string
	Body        []byte
	Form        *Form
	Mode        string
	Credentials string
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

// Form is a multipart form payload. Parts are held in memory; file parts
// carry their content as bytes rather than paths.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name     string
	filename string
	content  []byte
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) AddField(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

func (f *Form) AddFile(name, filename string, content []byte) *Form {
	f.files = append(f.files, formFile{name: name, filename: filename, content: content})
	return f
}

// Build encodes the form as a multipart body and returns it along with the
// content type carrying the boundary.
func (f *Form) Build() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range f.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}

	for _, file := range f.files {
		part, err := writer.CreateFormFile(file.name, file.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, bytes.NewReader(file.content)); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
