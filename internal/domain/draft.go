package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoValidSections = errors.New("at least one section with a video is required")
	ErrIndexOutOfRange = errors.New("index out of range")
)

type VideoInput struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

type SectionInput struct {
	Title  string       `json:"title"`
	Videos []VideoInput `json:"videos"`
}

// CourseInput is the submitted shape for course create and replace.
type CourseInput struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	Sections    []SectionInput `json:"sections"`
}

// Draft is an in-memory staging area for editing a course's nested
// section/video structure. Every editing operation returns a new value;
// the receiver is never mutated, so drafts can be kept for undo or
// compared without aliasing surprises.
type Draft struct {
	CourseID    uuid.UUID
	Title       string
	Description string
	ImageURL    string
	Sections    []SectionInput
}

// NewDraft stages a loaded course for editing. Every section is
// guaranteed a non-nil videos list even if storage returned none.
func NewDraft(c Course) Draft {
	sections := make([]SectionInput, len(c.Sections))
	for i, s := range c.Sections {
		videos := make([]VideoInput, len(s.Videos))
		for j, v := range s.Videos {
			videos[j] = VideoInput{Title: v.Title, VideoURL: v.VideoURL}
		}
		sections[i] = SectionInput{Title: s.Title, Videos: videos}
	}
	return Draft{
		CourseID:    c.ID,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Sections:    sections,
	}
}

func (d Draft) clone() Draft {
	sections := make([]SectionInput, len(d.Sections))
	for i, s := range d.Sections {
		videos := make([]VideoInput, len(s.Videos))
		copy(videos, s.Videos)
		sections[i] = SectionInput{Title: s.Title, Videos: videos}
	}
	d.Sections = sections
	return d
}

func (d Draft) checkSection(si int) error {
	if si < 0 || si >= len(d.Sections) {
		return fmt.Errorf("section %d: %w", si, ErrIndexOutOfRange)
	}
	return nil
}

func (d Draft) checkVideo(si, vi int) error {
	if err := d.checkSection(si); err != nil {
		return err
	}
	if vi < 0 || vi >= len(d.Sections[si].Videos) {
		return fmt.Errorf("section %d video %d: %w", si, vi, ErrIndexOutOfRange)
	}
	return nil
}

// AddSection appends an empty section holding one empty video.
func (d Draft) AddSection() Draft {
	next := d.clone()
	next.Sections = append(next.Sections, SectionInput{
		Videos: []VideoInput{{}},
	})
	return next
}

// AddVideo appends an empty video to the given section.
func (d Draft) AddVideo(si int) (Draft, error) {
	if err := d.checkSection(si); err != nil {
		return d, err
	}
	next := d.clone()
	next.Sections[si].Videos = append(next.Sections[si].Videos, VideoInput{})
	return next, nil
}

// RemoveSection drops the section at si, preserving the order of the rest.
func (d Draft) RemoveSection(si int) (Draft, error) {
	if err := d.checkSection(si); err != nil {
		return d, err
	}
	next := d.clone()
	next.Sections = append(next.Sections[:si], next.Sections[si+1:]...)
	return next, nil
}

// RemoveVideo drops the video at vi in section si.
func (d Draft) RemoveVideo(si, vi int) (Draft, error) {
	if err := d.checkVideo(si, vi); err != nil {
		return d, err
	}
	next := d.clone()
	videos := next.Sections[si].Videos
	next.Sections[si].Videos = append(videos[:vi], videos[vi+1:]...)
	return next, nil
}

func (d Draft) SetTitle(title string) Draft {
	next := d.clone()
	next.Title = title
	return next
}

func (d Draft) SetDescription(description string) Draft {
	next := d.clone()
	next.Description = description
	return next
}

func (d Draft) SetImageURL(imageURL string) Draft {
	next := d.clone()
	next.ImageURL = imageURL
	return next
}

func (d Draft) SetSectionTitle(si int, title string) (Draft, error) {
	if err := d.checkSection(si); err != nil {
		return d, err
	}
	next := d.clone()
	next.Sections[si].Title = title
	return next, nil
}

func (d Draft) SetVideoTitle(si, vi int, title string) (Draft, error) {
	if err := d.checkVideo(si, vi); err != nil {
		return d, err
	}
	next := d.clone()
	next.Sections[si].Videos[vi].Title = title
	return next, nil
}

func (d Draft) SetVideoURL(si, vi int, videoURL string) (Draft, error) {
	if err := d.checkVideo(si, vi); err != nil {
		return d, err
	}
	next := d.clone()
	next.Sections[si].Videos[vi].VideoURL = videoURL
	return next, nil
}

// Input renders the draft as a submittable course payload.
func (d Draft) Input() CourseInput {
	c := d.clone()
	return CourseInput{
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Sections:    c.Sections,
	}
}

// NormalizeSections applies the edit-path validation rules: trim every
// string, drop sections with an empty title, drop videos missing a title
// or URL, then drop sections left without videos. Returns
// ErrNoValidSections when nothing survives.
func NormalizeSections(sections []SectionInput) ([]SectionInput, error) {
	valid := make([]SectionInput, 0, len(sections))
	for _, s := range sections {
		title := strings.TrimSpace(s.Title)
		if title == "" {
			continue
		}
		videos := make([]VideoInput, 0, len(s.Videos))
		for _, v := range s.Videos {
			vt := strings.TrimSpace(v.Title)
			vu := strings.TrimSpace(v.VideoURL)
			if vt == "" || vu == "" {
				continue
			}
			videos = append(videos, VideoInput{Title: vt, VideoURL: vu})
		}
		if len(videos) == 0 {
			continue
		}
		valid = append(valid, SectionInput{Title: title, Videos: videos})
	}
	if len(valid) == 0 {
		return nil, ErrNoValidSections
	}
	return valid, nil
}

// FilterSections applies the create-path rules: keep sections whose title
// is non-empty and that hold at least one video with both fields set.
// Unlike NormalizeSections nothing is trimmed and kept sections keep all
// their videos, matching the historical creation behavior.
func FilterSections(sections []SectionInput) []SectionInput {
	kept := make([]SectionInput, 0, len(sections))
	for _, s := range sections {
		if s.Title == "" {
			continue
		}
		hasVideo := false
		for _, v := range s.Videos {
			if v.Title != "" && v.VideoURL != "" {
				hasVideo = true
				break
			}
		}
		if hasVideo {
			kept = append(kept, s)
		}
	}
	return kept
}
