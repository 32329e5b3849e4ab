// Package config handles deposit generation configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every option consumed during deposit generation.
// Loaded once, then treated as read-only.
type Config struct {
	// Batch envelope
	BatchFilePrefix string `yaml:"batch_file_prefix"`
	Generator       string `yaml:"generator"`
	DepositorName   string `yaml:"depositor_name"`
	EmailAddress    string `yaml:"email_address"`
	Registrant      string `yaml:"registrant"`

	// Destination schema
	SchemaVersion string `yaml:"schema_version"`

	// Publication date resolution, in preference order
	PubDateTypes []string `yaml:"pub_date_types"`

	// Journal volume calculation when an article has no volume of its own
	YearOfFirstVolume int `yaml:"year_of_first_volume"`

	// Optional reference_distribution_opts attribute on journal_article
	ReferenceDistributionOpts string `yaml:"reference_distribution_opts,omitempty"`

	// Resource URL templates. Placeholders: {doi}, {manuscript}, {volume},
	// {version} for articles, plus {id} and {prefix} for components.
	DOIPattern           string `yaml:"doi_pattern,omitempty"`
	ComponentDOIPattern  string `yaml:"component_doi_pattern,omitempty"`
	TextMiningPDFPattern string `yaml:"text_mining_pdf_pattern,omitempty"`
	TextMiningXMLPattern string `yaml:"text_mining_xml_pattern,omitempty"`

	// Component id styling and component license reference
	ComponentStyle      bool   `yaml:"component_style,omitempty"`
	ComponentLicenseRef string `yaml:"component_license_ref,omitempty"`

	// Access indicator scopes; empty disables the block entirely
	AccessIndicatorsAppliesTo []string `yaml:"access_indicators_applies_to,omitempty"`

	// Archive location names
	ArchiveLocations []string `yaml:"archive_locations,omitempty"`

	// Rich text handling
	JATSAbstract bool `yaml:"jats_abstract"` // Full tag conversion vs stripped abstracts
	FaceMarkup   bool `yaml:"face_markup"`   // Inline face markup in titles and citations

	// Whether elocation ids are eligible for the article_number item
	ElocationID bool `yaml:"elocation_id"`

	// Source contributor role -> Crossref contributor_role
	ContribTypes map[string]string `yaml:"contrib_types,omitempty"`
}

// Default returns a configuration with workable defaults for every option
// that has one. Callers still must supply depositor identity values.
func Default() *Config {
	return &Config{
		BatchFilePrefix: "deposit-",
		Generator:       "depositor",
		SchemaVersion:   "4.4.1",
		PubDateTypes:    []string{"pub", "publication"},
		JATSAbstract:    true,
		FaceMarkup:      true,
		ElocationID:     true,
		ContribTypes: map[string]string{
			"author": "author",
			"editor": "editor",
		},
	}
}

// Load reads a YAML configuration file, applying values over Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the options that generation cannot proceed without.
func (c *Config) Validate() error {
	if c.SchemaVersion == "" {
		return fmt.Errorf("config: schema_version is required")
	}
	if c.Registrant == "" {
		return fmt.Errorf("config: registrant is required")
	}
	if c.DepositorName == "" || c.EmailAddress == "" {
		return fmt.Errorf("config: depositor_name and email_address are required")
	}
	return nil
}
