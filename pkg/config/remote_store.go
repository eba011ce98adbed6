package config

import (
	"os"
)

// RemoteStoreConfig describes access to the external document store (Firebase).
// Immutable after construction.
type RemoteStoreConfig struct {
	projectID       string
	credentialsPath string
	collection      string
}

// NewRemoteStoreConfig validates and builds a RemoteStoreConfig.
// The credential file is only checked for existence, never opened;
// its contents belong to the store client built elsewhere.
func NewRemoteStoreConfig(projectID, credentialsPath, collection string) (RemoteStoreConfig, error) {
	// 식별자 검사가 먼저: 경로가 유효하든 아니든 빈 project_id는 EmptyIdentifier
	if projectID == "" {
		return RemoteStoreConfig{}, newError(KindEmptyIdentifier, EnvFirebaseProjectID, "", "project id cannot be empty")
	}

	info, err := os.Stat(credentialsPath)
	if err != nil || info.IsDir() {
		return RemoteStoreConfig{}, newError(KindMissingCredentialFile, EnvFirebaseCredentialsPath, credentialsPath, "credentials file not found")
	}

	if collection == "" {
		collection = DefaultCollection
	}

	return RemoteStoreConfig{
		projectID:       projectID,
		credentialsPath: credentialsPath,
		collection:      collection,
	}, nil
}

// LoadRemoteStore builds the remote-store section from env
func LoadRemoteStore(env Environ) (RemoteStoreConfig, error) {
	return NewRemoteStoreConfig(
		env.Get(EnvFirebaseProjectID, ""),
		env.Get(EnvFirebaseCredentialsPath, DefaultCredentialsPath),
		env.Get(EnvFirebaseCollection, DefaultCollection),
	)
}

func (r RemoteStoreConfig) ProjectID() string       { return r.projectID }
func (r RemoteStoreConfig) CredentialsPath() string { return r.credentialsPath }
func (r RemoteStoreConfig) Collection() string      { return r.collection }
