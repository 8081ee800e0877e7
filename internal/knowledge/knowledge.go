package knowledge

import (
	"fmt"
	"strings"
	"sync"
)

// This package compiles the structured portfolio content (profile, services,
// projects, skills, FAQ, testimonials, stats, blog) into a single text blob
// that grounds the chat assistant's answers. The compilation is pure and is
// performed at most once per process; every later call returns the cached
// string.

// Profile describes the site owner.
type Profile struct {
	Name     string
	Title    string
	Location string
	Email    string
	Summary  string
}

// Service is one offering listed on the site.
type Service struct {
	Name        string
	Description string
}

// Project is a case study or portfolio piece.
type Project struct {
	Name        string
	Description string
	Tech        []string
	Outcome     string
}

// SkillGroup is a named cluster of skills.
type SkillGroup struct {
	Category string
	Skills   []string
}

// FAQ is a frequently asked question with its canned answer.
type FAQ struct {
	Question string
	Answer   string
}

// Testimonial is a client quote.
type Testimonial struct {
	Author string
	Role   string
	Quote  string
}

// Stat is a headline number shown on the site.
type Stat struct {
	Label string
	Value string
}

// BlogPost is a published article summary.
type BlogPost struct {
	Title   string
	Summary string
}

// Data is the full structured input to the compiler.
type Data struct {
	Profile      Profile
	Services     []Service
	Projects     []Project
	Skills       []SkillGroup
	FAQs         []FAQ
	Testimonials []Testimonial
	Stats        []Stat
	Posts        []BlogPost
}

// Compiler renders Data to text lazily and memoizes the result.
type Compiler struct {
	data Data

	once         sync.Once
	text         string
	systemPrompt string
}

func NewCompiler(data Data) *Compiler {
	return &Compiler{data: data}
}

// Build returns the compiled knowledge base text. The first call renders it;
// all subsequent calls return the identical cached string.
func (c *Compiler) Build() string {
	c.once.Do(c.compile)
	return c.text
}

// SystemPrompt returns the full system prompt: the knowledge base plus the
// response-format instructions given to the model. Cached alongside Build.
func (c *Compiler) SystemPrompt() string {
	c.once.Do(c.compile)
	return c.systemPrompt
}

func (c *Compiler) compile() {
	sections := []string{
		c.profileSection(),
		c.servicesSection(),
		c.projectsSection(),
		c.skillsSection(),
		c.statsSection(),
		c.testimonialsSection(),
		c.faqSection(),
		c.blogSection(),
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	c.text = strings.Join(nonEmpty, "\n\n")

	name := c.data.Profile.Name
	if name == "" {
		name = "the site owner"
	}
	c.systemPrompt = fmt.Sprintf(
		"You are the AI assistant on %s's portfolio website. "+
			"Answer visitor questions using only the information below. "+
			"If a question cannot be answered from it, say so and suggest using the contact form. "+
			"Keep answers short, friendly and in plain text.\n\n%s",
		name, c.text,
	)
}

// Each section builder returns "" when its input is missing or unusable, so a
// malformed collaborator degrades the knowledge base instead of breaking chat.

func (c *Compiler) profileSection() string {
	p := c.data.Profile
	if p.Name == "" && p.Summary == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("## About\n")
	if p.Name != "" {
		line := p.Name
		if p.Title != "" {
			line += " — " + p.Title
		}
		if p.Location != "" {
			line += " (" + p.Location + ")"
		}
		b.WriteString(line + "\n")
	}
	if p.Summary != "" {
		b.WriteString(p.Summary + "\n")
	}
	if p.Email != "" {
		b.WriteString("Contact email: " + p.Email + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Compiler) servicesSection() string {
	var lines []string
	for _, s := range c.data.Services {
		if s.Name == "" {
			continue
		}
		line := "- " + s.Name
		if s.Description != "" {
			line += ": " + s.Description
		}
		lines = append(lines, line)
	}
	return section("## Services", lines)
}

func (c *Compiler) projectsSection() string {
	var lines []string
	for _, p := range c.data.Projects {
		if p.Name == "" {
			continue
		}
		line := "- " + p.Name
		if p.Description != "" {
			line += ": " + p.Description
		}
		if len(p.Tech) > 0 {
			line += " [" + strings.Join(p.Tech, ", ") + "]"
		}
		if p.Outcome != "" {
			line += " Outcome: " + p.Outcome
		}
		lines = append(lines, line)
	}
	return section("## Selected projects", lines)
}

func (c *Compiler) skillsSection() string {
	var lines []string
	for _, g := range c.data.Skills {
		if g.Category == "" || len(g.Skills) == 0 {
			continue
		}
		lines = append(lines, "- "+g.Category+": "+strings.Join(g.Skills, ", "))
	}
	return section("## Skills", lines)
}

func (c *Compiler) statsSection() string {
	var lines []string
	for _, s := range c.data.Stats {
		if s.Label == "" || s.Value == "" {
			continue
		}
		lines = append(lines, "- "+s.Value+" "+s.Label)
	}
	return section("## At a glance", lines)
}

func (c *Compiler) testimonialsSection() string {
	var lines []string
	for _, t := range c.data.Testimonials {
		if t.Quote == "" {
			continue
		}
		line := "- \"" + t.Quote + "\""
		if t.Author != "" {
			line += " — " + t.Author
			if t.Role != "" {
				line += ", " + t.Role
			}
		}
		lines = append(lines, line)
	}
	return section("## Testimonials", lines)
}

func (c *Compiler) faqSection() string {
	var lines []string
	for _, f := range c.data.FAQs {
		if f.Question == "" || f.Answer == "" {
			continue
		}
		lines = append(lines, "Q: "+f.Question+"\nA: "+f.Answer)
	}
	return section("## FAQ", lines)
}

func (c *Compiler) blogSection() string {
	var lines []string
	for _, p := range c.data.Posts {
		if p.Title == "" {
			continue
		}
		line := "- " + p.Title
		if p.Summary != "" {
			line += ": " + p.Summary
		}
		lines = append(lines, line)
	}
	return section("## Recent writing", lines)
}

func section(header string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return header + "\n" + strings.Join(lines, "\n")
}
