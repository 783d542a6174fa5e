package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	// registry sources: directory of flat text files, optionally overridden
	// by an HTTP base URL
	DataDir         string
	RegistryBaseURL string

	// outbound mail relay accepting a multipart "file" upload
	MailRelayURL string

	CompanyFile string

	AuthRequired bool
	JWTSecret    string

	DBDSN string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dataDir := strings.TrimSpace(os.Getenv("DATA_DIR"))
	if dataDir == "" {
		dataDir = "data"
	}

	companyFile := strings.TrimSpace(os.Getenv("COMPANY_FILE"))
	if companyFile == "" {
		companyFile = "company.yaml"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:         appAddr,
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		DataDir:         dataDir,
		RegistryBaseURL: strings.TrimSpace(os.Getenv("REGISTRY_BASE_URL")),
		MailRelayURL:    strings.TrimSpace(os.Getenv("MAIL_RELAY_URL")),
		CompanyFile:     companyFile,
		AuthRequired:    strings.EqualFold(strings.TrimSpace(os.Getenv("AUTH_REQUIRED")), "true"),
		JWTSecret:       secret,
		DBDSN:           strings.TrimSpace(os.Getenv("DB_DSN")),
	}
}
