// Package store owns the single live resume document for a session. All
// mutation flows through it, and it alone touches persistence: the document
// is saved after every change and restored once at initialization.
package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Koushiik20/ResuMate/internal/schemas"
	"github.com/Koushiik20/ResuMate/internal/types"
)

// Store is the sole mutator of the resume document. The session model is a
// single logical writer reacting to UI events; the mutex keeps the store
// safe anyway when a background task (export, analysis) reads a snapshot.
type Store struct {
	mu       sync.Mutex
	doc      *types.ResumeDocument
	storage  Storage
	onChange func(*types.ResumeDocument)
}

// New creates a store backed by the given storage. A previously saved
// document is restored when it reads back and validates cleanly; anything
// else silently falls back to the default skeleton. Corruption is treated
// as absence, never as an error.
func New(storage Storage) *Store {
	return &Store{
		doc:     restore(storage),
		storage: storage,
	}
}

func restore(storage Storage) *types.ResumeDocument {
	data, err := storage.Read()
	if err != nil {
		return types.NewDefaultDocument()
	}
	if err := schemas.ValidateDocument(data); err != nil {
		log.Printf("[STORE] saved document failed validation, starting fresh: %v", err)
		return types.NewDefaultDocument()
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("[STORE] saved document failed to parse, starting fresh: %v", err)
		return types.NewDefaultDocument()
	}
	if doc.Template == "" {
		doc.Template = types.DefaultTemplate
	}
	return &doc
}

// OnChange registers a callback invoked synchronously after every mutation
// with a snapshot of the new document state. The preview controller uses
// this to re-render without a stale window.
func (s *Store) OnChange(fn func(*types.ResumeDocument)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Document returns a deep copy of the current document
func (s *Store) Document() *types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// persist saves the document and notifies the change listener. Must be
// called with the lock held. Persistence is fire and forget: a failed write
// is logged, not surfaced, and the next mutation tries again.
func (s *Store) persist() {
	data, err := json.Marshal(s.doc)
	if err != nil {
		log.Printf("[STORE] failed to serialize document: %v", err)
	} else if err := s.storage.Write(data); err != nil {
		log.Printf("[STORE] failed to save document: %v", err)
	}
	if s.onChange != nil {
		s.onChange(s.doc.Clone())
	}
}

// UpdatePersonalInfo shallow-merges the set fields of the patch into the
// personal info block. Sibling fields are untouched.
func (s *Store) UpdatePersonalInfo(patch PersonalInfoPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := &s.doc.PersonalInfo
	applyString(&info.FullName, patch.FullName)
	applyString(&info.Title, patch.Title)
	applyString(&info.Email, patch.Email)
	applyString(&info.Phone, patch.Phone)
	applyString(&info.Location, patch.Location)
	applyString(&info.Website, patch.Website)
	applyString(&info.Summary, patch.Summary)
	s.persist()
}

// AddExperience appends a blank experience entry with a fresh id and
// returns it. Existing entries are never touched or reordered.
func (s *Store) AddExperience() types.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := types.NewExperience()
	s.doc.Experience = append(s.doc.Experience, entry)
	s.persist()
	return entry
}

// UpdateExperience merges the patch into the entry with the given id.
// An unknown id is a no-op: the UI may fire a stale callback for an entry
// that was just removed.
func (s *Store) UpdateExperience(id string, patch ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Experience {
		if s.doc.Experience[i].ID != id {
			continue
		}
		entry := &s.doc.Experience[i]
		applyString(&entry.Company, patch.Company)
		applyString(&entry.Position, patch.Position)
		applyString(&entry.StartDate, patch.StartDate)
		applyString(&entry.EndDate, patch.EndDate)
		applyBool(&entry.Current, patch.Current)
		applyString(&entry.Description, patch.Description)
		s.persist()
		return
	}
}

// RemoveExperience deletes the entry with the given id, preserving the
// order of the remaining entries. Removing the last remaining entry is
// refused with ErrLastEntry. An unknown id removes nothing, even when the
// collection is down to one entry: a stale callback for an entry that was
// just removed must not surface a spurious last-entry refusal.
func (s *Store) RemoveExperience(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Experience {
		if s.doc.Experience[i].ID != id {
			continue
		}
		if len(s.doc.Experience) <= 1 {
			return ErrLastEntry
		}
		s.doc.Experience = append(s.doc.Experience[:i], s.doc.Experience[i+1:]...)
		s.persist()
		return nil
	}
	return nil
}

// AddEducation appends a blank education entry with a fresh id and returns it
func (s *Store) AddEducation() types.Education {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := types.NewEducation()
	s.doc.Education = append(s.doc.Education, entry)
	s.persist()
	return entry
}

// UpdateEducation merges the patch into the entry with the given id.
// An unknown id is a no-op.
func (s *Store) UpdateEducation(id string, patch EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Education {
		if s.doc.Education[i].ID != id {
			continue
		}
		entry := &s.doc.Education[i]
		applyString(&entry.Institution, patch.Institution)
		applyString(&entry.Degree, patch.Degree)
		applyString(&entry.Field, patch.Field)
		applyString(&entry.StartDate, patch.StartDate)
		applyString(&entry.EndDate, patch.EndDate)
		applyBool(&entry.Current, patch.Current)
		applyString(&entry.Description, patch.Description)
		s.persist()
		return
	}
}

// RemoveEducation deletes the entry with the given id. Removing the last
// remaining entry is refused with ErrLastEntry.
func (s *Store) RemoveEducation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Education {
		if s.doc.Education[i].ID != id {
			continue
		}
		if len(s.doc.Education) <= 1 {
			return ErrLastEntry
		}
		s.doc.Education = append(s.doc.Education[:i], s.doc.Education[i+1:]...)
		s.persist()
		return nil
	}
	return nil
}

// AddSkill appends a blank skill entry with a fresh id and the default
// level, and returns it.
func (s *Store) AddSkill() types.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := types.NewSkill()
	s.doc.Skills = append(s.doc.Skills, entry)
	s.persist()
	return entry
}

// UpdateSkill merges the patch into the entry with the given id.
// An unknown id is a no-op.
func (s *Store) UpdateSkill(id string, patch SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Skills {
		if s.doc.Skills[i].ID != id {
			continue
		}
		entry := &s.doc.Skills[i]
		applyString(&entry.Name, patch.Name)
		applyInt(&entry.Level, patch.Level)
		s.persist()
		return
	}
}

// RemoveSkill deletes the entry with the given id. Removing the last
// remaining entry is refused with ErrLastEntry.
func (s *Store) RemoveSkill(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Skills {
		if s.doc.Skills[i].ID != id {
			continue
		}
		if len(s.doc.Skills) <= 1 {
			return ErrLastEntry
		}
		s.doc.Skills = append(s.doc.Skills[:i], s.doc.Skills[i+1:]...)
		s.persist()
		return nil
	}
	return nil
}

// SetTemplate records the selected template identifier. The store accepts
// any string; an identifier with no registered renderer is substituted with
// the default at render time, keeping the store decoupled from the
// renderer registry.
func (s *Store) SetTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Template = id
	s.persist()
}

// ResetDocument replaces the document wholesale with a fresh default
// skeleton, discarding all entries and personal info.
func (s *Store) ResetDocument() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = types.NewDefaultDocument()
	s.persist()
}
