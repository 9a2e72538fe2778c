// Package xlsxfile holds the workbook plumbing shared by the xlsx adapters.
package xlsxfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

const Ext = ".xlsx"

// WithExt appends .xlsx unless path already ends with it (any case).
func WithExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), Ext) {
		return path
	}
	return path + Ext
}

// Save writes f to path (with .xlsx enforced) and returns the final path.
// The workbook is written to a temp file next to the destination and renamed
// into place, so a failed save never leaves a truncated file behind.
func Save(op string, f *excelize.File, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", writeFailure(op, path, os.ErrInvalid)
	}
	path = WithExt(path)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", writeFailure(op, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".shiplog-*"+Ext)
	if err != nil {
		return "", writeFailure(op, dir, err)
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", writeFailure(op, path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", writeFailure(op, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", writeFailure(op, path, err)
	}

	return path, nil
}

// NewSheet returns a workbook whose only sheet is called name.
func NewSheet(op, name string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		_ = f.Close()
		return nil, writeFailure(op, "", err)
	}
	return f, nil
}

// HeaderStyle returns a bold style id for header rows.
func HeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
}

func writeFailure(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindWriteFailure,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrWriteFailure, err),
	}
}
