package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Company is the identity block printed in the document header.
type Company struct {
	Name      string `yaml:"name"`
	Phone     string `yaml:"phone"`
	OrgNumber string `yaml:"org_number"`
	LogoPath  string `yaml:"logo_path"`
}

func defaultCompany() Company {
	return Company{
		Name:      "Voss Taxi SA",
		Phone:     "56 51 10 00",
		OrgNumber: "123 456 789 MVA",
	}
}

// LoadCompany reads the YAML company profile. A missing or unreadable file
// falls back to the built-in profile; this is a convenience, not a hard
// requirement.
func LoadCompany(path string) Company {
	c := defaultCompany()
	b, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		log.Printf("warning: could not parse company profile %s: %v", path, err)
		return defaultCompany()
	}
	return c
}
