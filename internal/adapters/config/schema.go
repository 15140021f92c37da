package config

import (
	"time"

	"go.trai.ch/stay/internal/core/domain"
)

// File represents the structure of the stay.yaml settings file. Absent keys
// keep their defaults.
type File struct {
	RestoreCursor *bool   `yaml:"restoreCursor"`
	RespectLinks  *bool   `yaml:"respectLinks"`
	MaxPositions  *uint   `yaml:"maxPositions"`
	PersistToDisk *bool   `yaml:"persistToDisk"`
	RestoreDelay  *int64  `yaml:"restoreDelay"`
	FilePath      *string `yaml:"filePath"`
}

func (f *File) apply(s *domain.Settings) {
	if f.RestoreCursor != nil {
		s.RestoreCursor = *f.RestoreCursor
	}
	if f.RespectLinks != nil {
		s.RespectLinks = *f.RespectLinks
	}
	if f.MaxPositions != nil {
		s.MaxPositions = *f.MaxPositions
	}
	if f.PersistToDisk != nil {
		s.PersistToDisk = *f.PersistToDisk
	}
	if f.RestoreDelay != nil {
		s.RestoreDelay = time.Duration(*f.RestoreDelay) * time.Millisecond
	}
	if f.FilePath != nil {
		s.FilePath = *f.FilePath
	}
}
