// Package dryrun synthesizes wasted-spend terms from a local campaign
// configuration file, so the pipeline can run without touching the Ads API.
package dryrun

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"adwaste/internal/logging"
	"adwaste/internal/report"
)

const (
	maxTerms = 10

	// Simulated costs start above the $50 wasted-spend threshold and climb
	// by $10 per keyword so every synthesized term would pass the live filter.
	baseCostMicros = 60_000_000
	stepCostMicros = 10_000_000
)

// CampaignConfig is the dry-run campaign structure.
type CampaignConfig struct {
	AdGroups []AdGroup `yaml:"ad_groups"`
}

// AdGroup is one ad group with its keyword list.
type AdGroup struct {
	Name     string    `yaml:"name"`
	Keywords []Keyword `yaml:"keywords"`
}

// Keyword accepts either a bare string or a mapping with a text key.
type Keyword struct {
	Text string `yaml:"text"`
}

// UnmarshalYAML handles both keyword encodings.
func (k *Keyword) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&k.Text)
	}

	type plain struct {
		Text string `yaml:"text"`
	}
	var p plain
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("invalid keyword entry: %w", err)
	}
	k.Text = p.Text
	return nil
}

// Load reads a campaign config from a YAML file. A missing file surfaces the
// underlying os.ErrNotExist so callers can distinguish absent from malformed.
func Load(path string) (*CampaignConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign config: %w", err)
	}

	var cfg CampaignConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse campaign config: %w", err)
	}

	return &cfg, nil
}

// Synthesize produces up to 10 simulated high-spend terms, one per keyword in
// ad-group order. Keywords with empty text are skipped without consuming a
// cost step.
func Synthesize(cfg *CampaignConfig) []report.TermSpend {
	var terms []report.TermSpend
	for _, ag := range cfg.AdGroups {
		for _, kw := range ag.Keywords {
			if kw.Text == "" {
				continue
			}
			terms = append(terms, report.TermSpend{
				Term:       kw.Text,
				CostMicros: baseCostMicros + int64(len(terms))*stepCostMicros,
			})
			if len(terms) >= maxTerms {
				logging.DryRun("synthesize: hit %d-term cap", maxTerms)
				return terms
			}
		}
	}

	logging.DryRun("synthesize: ad_groups=%d terms=%d", len(cfg.AdGroups), len(terms))
	return terms
}
