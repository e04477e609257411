package filestore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "bare", payload: "aGVsbG8=", want: "hello"},
		{name: "unpadded", payload: "aGVsbG8", want: "hello"},
		{name: "data url", payload: "data:text/plain;base64,aGVsbG8=", want: "hello"},
		{name: "data url without base64", payload: "data:text/plain,hello", wantErr: true},
		{name: "garbage", payload: "***", wantErr: true},
		{name: "empty", payload: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestS3Uploader_Upload(t *testing.T) {
	var mu sync.Mutex
	var gotMethod, gotPath, gotType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotMethod, gotPath, gotType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		mu.Unlock()
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := NewS3Uploader(context.Background(), S3Options{
		Bucket:    "tradepilot",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
		PublicURL: "https://cdn.example.com/",
		Folder:    "tradepilot/completions",
	})
	require.NoError(t, err)

	pdf := []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")
	obj, err := u.Upload(context.Background(), File{Data: pdf, Name: "report.pdf"})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.True(t, strings.HasPrefix(gotPath, "/tradepilot/tradepilot/completions/"), gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ".pdf"), gotPath)
	assert.Equal(t, "application/pdf", gotType)

	assert.Equal(t, "report.pdf", obj.Name)
	assert.Equal(t, int64(len(pdf)), obj.Size)
	assert.True(t, strings.HasPrefix(obj.URL, "https://cdn.example.com/tradepilot/completions/"), obj.URL)
}

func TestS3Uploader_UploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<?xml version="1.0"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`))
	}))
	defer srv.Close()

	u, err := NewS3Uploader(context.Background(), S3Options{
		Bucket:    "tradepilot",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
	})
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), File{Data: []byte("hello")})
	assert.Error(t, err)
}

func TestS3Uploader_DefaultNameAndURL(t *testing.T) {
	u := &S3Uploader{bucket: "b", region: "eu-west-1"}
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/k/x.pdf", u.objectURL("k/x.pdf"))

	_, err := u.Upload(context.Background(), File{})
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestNewS3Uploader_RequiresBucket(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), S3Options{Region: "us-east-1"})
	assert.Error(t, err)
}
