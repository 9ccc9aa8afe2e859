package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

// Request wraps http.Request with parsing helpers for inbound handlers.
// Failures surface as goerror validation errors so handlers can return
// them directly.
type Request struct {
	*http.Request
}

// GetParam reads a path parameter stored in the context by httprouter.
func (r *Request) GetParam(key string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(key)
}

// GetParamInt64 reads a path parameter as an int64.
func (r *Request) GetParamInt64(key string) (int64, error) {
	value, err := strconv.ParseInt(r.GetParam(key), 10, 64)
	if err != nil {
		return 0, goerror.NewInvalidFormat("param must integer value")
	}
	return value, nil
}

// GetQuery returns the trimmed first value of a query parameter.
func (r *Request) GetQuery(key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// GetQueries returns every value of a repeated query parameter.
func (r *Request) GetQueries(key string) []string {
	return r.URL.Query()[key]
}

func (r *Request) queryInt(key string, bitSize int) (int64, error) {
	raw := r.GetQuery(key)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, bitSize)
	if err != nil {
		return 0, goerror.NewInvalidFormat()
	}

	return value, nil
}

// GetQueryInt32 reads a query parameter as an int32; empty yields zero.
func (r *Request) GetQueryInt32(key string) (int32, error) {
	value, err := r.queryInt(key, 32)
	return int32(value), err
}

// GetQueryInt16 reads a query parameter as an int16; empty yields zero.
func (r *Request) GetQueryInt16(key string) (int16, error) {
	value, err := r.queryInt(key, 16)
	return int16(value), err
}

// GetQueryDate reads a query parameter as a time in the given layout;
// empty yields the zero time.
func (r *Request) GetQueryDate(key, format string) (time.Time, error) {
	raw := r.GetQuery(key)
	if raw == "" {
		return time.Time{}, nil
	}

	value, err := time.Parse(format, raw)
	if err != nil {
		return time.Time{}, goerror.NewInvalidFormat("Invalid query " + key)
	}

	return value, nil
}

// DecodeBody decodes the JSON body into dst. Unknown fields and trailing
// content are rejected.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return goerror.NewInvalidFormat()
	}

	return nil
}

// StreamSingleFile returns the first multipart part whose form field
// matches name, without buffering the upload in memory. The caller owns
// closing the returned reader.
func (r *Request) StreamSingleFile(name string) (io.ReadCloser, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return nil, goerror.NewInvalidFormat("Invalid request content-type")
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, goerror.NewInvalidFormat()
		}
		if err != nil {
			return nil, goerror.NewInvalidFormat()
		}

		if part.FormName() == name {
			return part, nil
		}

		// Drain unrelated parts so the reader can advance.
		if _, errCopy := io.Copy(io.Discard, part); errCopy != nil {
			if err := part.Close(); err != nil {
				return nil, goerror.NewInvalidFormat(err.Error())
			}
			return nil, goerror.NewInvalidFormat(errCopy.Error())
		}
		if err := part.Close(); err != nil {
			return nil, goerror.NewInvalidFormat(err.Error())
		}
	}
}
