// Package sip reads an E-ARK SIP directory tree: package-level preservation
// and descriptive metadata plus one or more representations, each with its
// own metadata. The descriptive standard varies per content partner, so the
// package is generic over the descriptive document type; callers pick the
// profile by passing the matching parse function.
package sip

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/premis"
)

// Well-known locations inside a SIP, relative to the package or
// representation root.
const (
	metsFile        = "METS.xml"
	premisFile      = "metadata/preservation/premis.xml"
	descriptiveGlob = "metadata/descriptive/*.xml"
	representations = "representations/*"
	dataGlob        = "data/*"
)

// ParseFunc maps one descriptive metadata file onto its document type.
type ParseFunc[T any] func(path string) (T, error)

// PackageMetadata bundles the metadata found at one level of the SIP.
type PackageMetadata[T any] struct {
	Preservation premis.Premis
	Descriptive  []T
}

// Representation is one representation directory with its own descriptor,
// metadata and payload files.
type Representation[T any] struct {
	Name     string
	Path     string
	METSPath string
	Data     []string
	PackageMetadata[T]
}

// SIP is a fully parsed submission package.
type SIP[T any] struct {
	Path            string
	METSPath        string
	PackageMetadata[T]
	Representations []Representation[T]
}

// Entity returns the intellectual entity of the package-level PREMIS.
func (s SIP[T]) Entity() (premis.IntellectualEntity, bool) {
	return s.Preservation.Entity()
}

// FromPath reads the SIP rooted at dir. All violations across the package
// and its representations are folded into one error.
func FromPath[T any](dir string, parse ParseFunc[T]) (SIP[T], error) {
	s := SIP[T]{Path: dir}

	metsPath := filepath.Join(dir, metsFile)
	var errs []error
	if _, err := os.Stat(metsPath); err != nil {
		errs = append(errs, notFound(metsPath, err))
	} else {
		s.METSPath = metsPath
	}

	meta, err := readMetadata(dir, parse, true)
	errs = append(errs, err)
	s.PackageMetadata = meta

	reps, err := readRepresentations(dir, parse)
	errs = append(errs, err)
	s.Representations = reps

	if err := earkmodels.Merge(errs...); err != nil {
		return SIP[T]{}, err
	}
	return s, nil
}

// readMetadata parses the preservation and descriptive metadata under one
// level of the package. Descriptive metadata is mandatory at the package
// level and optional inside representations.
func readMetadata[T any](dir string, parse ParseFunc[T], requireDescriptive bool) (PackageMetadata[T], error) {
	var (
		meta PackageMetadata[T]
		errs []error
	)

	p, err := premis.ParseFile(filepath.Join(dir, premisFile))
	if err != nil {
		errs = append(errs, err)
	}
	meta.Preservation = p

	paths, err := doublestar.FilepathGlob(filepath.Join(dir, descriptiveGlob))
	if err != nil {
		errs = append(errs, notFound(filepath.Join(dir, descriptiveGlob), err))
	}
	if requireDescriptive && len(paths) == 0 {
		errs = append(errs, notFound(filepath.Join(dir, descriptiveGlob), nil))
	}
	sort.Strings(paths)
	for _, path := range paths {
		doc, err := parse(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		meta.Descriptive = append(meta.Descriptive, doc)
	}

	return meta, earkmodels.Merge(errs...)
}

func readRepresentations[T any](dir string, parse ParseFunc[T]) ([]Representation[T], error) {
	dirs, err := doublestar.FilepathGlob(filepath.Join(dir, representations))
	if err != nil {
		return nil, notFound(filepath.Join(dir, representations), err)
	}
	sort.Strings(dirs)

	var (
		out  []Representation[T]
		errs []error
	)
	for _, repDir := range dirs {
		info, err := os.Stat(repDir)
		if err != nil || !info.IsDir() {
			continue
		}
		rep := Representation[T]{
			Name: filepath.Base(repDir),
			Path: repDir,
		}

		metsPath := filepath.Join(repDir, metsFile)
		if _, err := os.Stat(metsPath); err != nil {
			errs = append(errs, notFound(metsPath, err))
		} else {
			rep.METSPath = metsPath
		}

		data, err := doublestar.FilepathGlob(filepath.Join(repDir, dataGlob))
		if err != nil {
			errs = append(errs, notFound(filepath.Join(repDir, dataGlob), err))
		}
		sort.Strings(data)
		rep.Data = data

		meta, err := readMetadata(repDir, parse, false)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rep.PackageMetadata = meta
		out = append(out, rep)
	}
	return out, earkmodels.Merge(errs...)
}

func notFound(path string, cause error) error {
	return earkmodels.Issues{{
		Path:    "/",
		Code:    earkmodels.CodeNotFound,
		Message: "missing " + filepath.Base(path),
		Source:  path,
		Cause:   cause,
	}}
}
