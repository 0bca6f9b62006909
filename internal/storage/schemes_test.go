package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		want    string
		wantOK  bool
	}{
		{name: "s3", backend: "aldryn_django.storage.S3MediaStorage", want: "aldryn_django.storage.S3MediaStorage", wantOK: true},
		{name: "djfs", backend: "fs.django.storage.DjeeseFSStorage", want: "fs.django.storage.DjeeseFSStorage", wantOK: true},
		{name: "local", backend: "django.core.files.storage.FileSystemStorage"},
		{name: "scheme name is not a backend", backend: "s3"},
		{name: "empty", backend: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchBackend(tt.backend)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
