package vocab

import (
	"errors"
	"strings"
)

var (
	ErrWordNotFound  = errors.New("word not found")
	ErrInvalidWordID = errors.New("invalid word id")
	ErrEnglishBlank  = errors.New("English word cannot be blank")
	ErrGermanBlank   = errors.New("German word cannot be blank")
)

// Word is one English/German vocabulary pair. ID is the hex form of the
// Mongo ObjectID and is empty until the word is stored.
type Word struct {
	ID      string `bson:"-" json:"_id" form:"-"`
	English string `bson:"english" json:"english" form:"english"`
	German  string `bson:"german" json:"german" form:"german"`
}

func (Word) CollectionName() string { return "vocab" }

// Validate reports the first missing required field.
func (w *Word) Validate() error {
	if strings.TrimSpace(w.English) == "" {
		return ErrEnglishBlank
	}
	if strings.TrimSpace(w.German) == "" {
		return ErrGermanBlank
	}
	return nil
}

// WordPatch holds the fields of an update; nil fields are left untouched.
type WordPatch struct {
	English *string `json:"english,omitempty" form:"english"`
	German  *string `json:"german,omitempty" form:"german"`
}

func (p *WordPatch) Empty() bool {
	return p == nil || (p.English == nil && p.German == nil)
}

func (p *WordPatch) Validate() error {
	if p == nil {
		return nil
	}
	if p.English != nil && strings.TrimSpace(*p.English) == "" {
		return ErrEnglishBlank
	}
	if p.German != nil && strings.TrimSpace(*p.German) == "" {
		return ErrGermanBlank
	}
	return nil
}

// Apply copies the set fields of p onto w.
func (p *WordPatch) Apply(w *Word) {
	if p == nil || w == nil {
		return
	}
	if p.English != nil {
		w.English = *p.English
	}
	if p.German != nil {
		w.German = *p.German
	}
}
