package config

import (
	"fmt"
	"os"
)

func Template() string {
	return serverTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(serverTemplate), 0o600)
}

const serverTemplate = `name = "cardctl"
addr = ":9200"
cors_origins = ["http://localhost:3000"]
strict_write = true
store_root = "local/book"
`
