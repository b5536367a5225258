package domain

import "github.com/yungbote/vocab-builder/internal/domain/vocab"

type (
	Word      = vocab.Word
	WordPatch = vocab.WordPatch
)

var (
	ErrWordNotFound  = vocab.ErrWordNotFound
	ErrInvalidWordID = vocab.ErrInvalidWordID
	ErrEnglishBlank  = vocab.ErrEnglishBlank
	ErrGermanBlank   = vocab.ErrGermanBlank
)
