package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Link struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
}

type Hero struct {
	Lines    []string `yaml:"lines" json:"lines"`
	Subtitle string   `yaml:"subtitle" json:"subtitle"`
	ImageURL string   `yaml:"image_url" json:"image_url"`
	CTA      Link     `yaml:"cta" json:"cta"`
}

type Contact struct {
	Email   string `yaml:"email" json:"email"`
	Phone   string `yaml:"phone" json:"phone"`
	Address string `yaml:"address" json:"address"`
	Hours   string `yaml:"hours" json:"hours"`
}

// FeaturedEvent карточка мероприятия в блоке на главной странице
type FeaturedEvent struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Date        string `yaml:"date" json:"date"`
	Time        string `yaml:"time" json:"time"`
	Location    string `yaml:"location" json:"location"`
	ImageURL    string `yaml:"image_url" json:"image_url"`
}

// Site содержимое публичной части сайта
type Site struct {
	Name           string          `yaml:"name" json:"name"`
	FullName       string          `yaml:"full_name" json:"full_name"`
	Hero           Hero            `yaml:"hero" json:"hero"`
	About          string          `yaml:"about" json:"about"`
	NavLinks       []Link          `yaml:"nav_links" json:"nav_links"`
	Social         []Link          `yaml:"social" json:"social"`
	Contact        Contact         `yaml:"contact" json:"contact"`
	FeaturedEvents []FeaturedEvent `yaml:"featured_events" json:"featured_events"`
}

// defaultNavLinks навигация по умолчанию
var defaultNavLinks = []Link{
	{Name: "Home", Href: "/"},
	{Name: "Events", Href: "/events"},
	{Name: "Our Team", Href: "/team"},
	{Name: "Contact Us", Href: "/contact"},
}

// Load читает содержимое сайта из YAML-файла
func Load(path string) (*Site, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site content: %w", err)
	}
	return Parse(b)
}

// Parse разбирает YAML и заполняет значения по умолчанию
func Parse(b []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("site content: name is required")
	}
	if len(s.NavLinks) == 0 {
		s.NavLinks = append([]Link(nil), defaultNavLinks...)
	}
	if s.Social == nil {
		s.Social = []Link{}
	}
	if s.FeaturedEvents == nil {
		s.FeaturedEvents = []FeaturedEvent{}
	}

	return &s, nil
}
