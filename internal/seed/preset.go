package seed

import (
	"fmt"
	"os"

	"quill/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preset describes a seeding profile loaded from a YAML file, so demo
// environments can be rebuilt reproducibly without editing code.
type Preset struct {
	Name    string        `yaml:"name"`
	Users   int           `yaml:"users"`
	Posts   int           `yaml:"posts"`
	Clean   bool          `yaml:"clean"`
	MaxDays int           `yaml:"max_days"`
	Groups  []PresetGroup `yaml:"groups"`
}

// PresetGroup is an extra group created alongside the built-ins.
type PresetGroup struct {
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

// LoadPreset reads and validates a preset file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var preset Preset
	if err := yaml.Unmarshal(raw, &preset); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}

	if preset.Users < 0 || preset.Posts < 0 {
		return nil, fmt.Errorf("preset %q: users and posts must not be negative", preset.Name)
	}
	for _, g := range preset.Groups {
		if g.Title == "" || g.Slug == "" {
			return nil, fmt.Errorf("preset %q: every group needs a title and slug", preset.Name)
		}
	}

	return &preset, nil
}

// Apply runs the preset: extra groups first, then the content mesh.
func (p *Preset) Apply(db *gorm.DB) error {
	for _, g := range p.Groups {
		group := models.Group{Title: g.Title, Slug: g.Slug, Description: g.Description}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&group).Error; err != nil {
			return fmt.Errorf("preset group %q: %w", g.Slug, err)
		}
	}

	seeder, err := NewSeeder(db, Options{
		NumUsers: p.Users,
		NumPosts: p.Posts,
		Clean:    p.Clean,
		MaxDays:  p.MaxDays,
	})
	if err != nil {
		return err
	}
	return seeder.Run()
}
