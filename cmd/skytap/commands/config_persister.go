package commands

import (
	"sync"
)

// CredentialsPersister serializes credential writes to the config file.
type CredentialsPersister struct {
	mutex sync.Mutex
}

// NewCredentialsPersister creates a new credentials persister.
func NewCredentialsPersister() *CredentialsPersister {
	return &CredentialsPersister{}
}

// SaveCredentials stores the endpoint and credential pair in the config.
func (p *CredentialsPersister) SaveCredentials(baseURL, username, apiKey string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.BaseURL = baseURL
	config.Username = username
	config.APIKey = apiKey

	return saveConfigStruct(config)
}

// ClearCredentials removes the stored credential pair, keeping the endpoint
// and display settings.
func (p *CredentialsPersister) ClearCredentials() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.Username = ""
	config.APIKey = ""

	return saveConfigStruct(config)
}
