package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoteStoreConfig(t *testing.T) {
	path := credentialsFile(t)

	store, err := NewRemoteStoreConfig("proj", path, "")
	require.NoError(t, err)

	assert.Equal(t, "proj", store.ProjectID())
	assert.Equal(t, path, store.CredentialsPath())
	assert.Equal(t, "sentiment_trading", store.Collection())
}

func TestNewRemoteStoreConfigMissingFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"missing dir", filepath.Join(dir, "nested", "creds.json")},
		{"directory", dir},
		{"empty path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRemoteStoreConfig("proj", tt.path, "")
			require.Error(t, err)
			assert.True(t, IsKind(err, KindMissingCredentialFile), "got %v", err)
		})
	}
}

func TestNewRemoteStoreConfigEmptyProject(t *testing.T) {
	_, err := NewRemoteStoreConfig("", credentialsFile(t), "c")
	assert.True(t, IsKind(err, KindEmptyIdentifier))

	_, err = NewRemoteStoreConfig("", filepath.Join(t.TempDir(), "missing.json"), "c")
	assert.True(t, IsKind(err, KindEmptyIdentifier))
}

func TestLoadRemoteStoreDefaultPath(t *testing.T) {
	// 기본 경로(./firebase_credentials.json)는 테스트 디렉터리에 없음
	_, err := LoadRemoteStore(Environ{EnvFirebaseProjectID: "proj"})
	assert.True(t, IsKind(err, KindMissingCredentialFile))
}
