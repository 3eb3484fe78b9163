package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Convert runs the full pipeline on a raw patch resource: validate and
// extract the voices, nibblize them, build the bank-info regions, and frame
// one or two complete SysEx bank streams. labelHint supplies the bank name
// shown on the FB-01 display.
func Convert(data []byte, labelHint string) (*Conversion, error) {
	patch, err := ParsePatch(data)
	if err != nil {
		return nil, err
	}
	return ConvertPatch(patch, labelHint)
}

// ConvertPatch encodes an already-parsed patch resource
func ConvertPatch(patch *PatchResource, labelHint string) (*Conversion, error) {
	if len(patch.Voices) != patch.Shape.VoiceCount() {
		return nil, &InternalShapeError{Stage: "voice list", Want: patch.Shape.VoiceCount(), Got: len(patch.Voices)}
	}

	result := &Conversion{Shape: patch.Shape}

	if patch.Shape == ShapeSingleBank {
		bank, err := buildBank(1, labelHint, 0, patch.Voices)
		if err != nil {
			return nil, err
		}
		result.BankA = bank
		return result, nil
	}

	bankA, err := buildBank(1, labelHint, 1, patch.Voices[:VoicesPerBank])
	if err != nil {
		return nil, err
	}
	bankB, err := buildBank(2, labelHint, 2, patch.Voices[VoicesPerBank:])
	if err != nil {
		return nil, err
	}
	result.BankA = bankA
	result.BankB = bankB
	return result, nil
}

func buildBank(bankIndex int, label string, labelIndex int, voices []Voice) ([]byte, error) {
	info := BankInfoRegion(label, labelIndex)
	packets := NibblizeBank(voices)
	return BuildBankStream(bankIndex, info, packets)
}

// ConvertFile converts a patch file on disk and writes the resulting bank
// file(s). Empty output paths and label default from the input name. The
// produced paths are returned in bank order. Writes go through a temp file
// and rename so a failed conversion leaves nothing behind.
func ConvertFile(inputPath, outputA, outputB, labelHint string) ([]string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch file: %w", err)
	}

	if outputA == "" {
		outputA = DefaultOutputPath(inputPath, 1)
	}
	if labelHint == "" {
		labelHint = DeriveLabel(outputA)
	}

	result, err := Convert(data, labelHint)
	if err != nil {
		return nil, err
	}

	paths := []string{outputA}
	if result.Shape == ShapeDoubleBank {
		if outputB == "" {
			outputB = DefaultOutputPath(inputPath, 2)
		}
		paths = append(paths, outputB)
	}

	for i, bank := range result.Banks() {
		if err := writeFileAtomic(paths[i], bank); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// writeFileAtomic commits data to path via a temp file in the same
// directory, so readers never observe a partial bank file
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to commit output file: %w", err)
	}
	return nil
}

// ResolveInputPath locates a patch file, trying the path as given and then
// with the conventional .pat and .002 extensions
func ResolveInputPath(path string) (string, error) {
	candidates := []string{path}
	if filepath.Ext(path) == "" {
		candidates = append(candidates, path+".pat", path+".002")
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("patch file %s not found", path)
}

// DefaultOutputPath derives a bank file name from the input path:
// <base>.syx for bank 1 and <base>2.syx for bank 2
func DefaultOutputPath(inputPath string, bankIndex int) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	if bankIndex == 2 {
		return base + "2.syx"
	}
	return base + ".syx"
}

// DeriveLabel turns an output path into a bank label hint: the bare
// filename without directory or extension
func DeriveLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
