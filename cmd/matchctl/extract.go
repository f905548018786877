package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type extractOutput struct {
	File       string   `json:"file"`
	Type       string   `json:"type"`
	TextLength int      `json:"text_length"`
	Skills     []string `json:"skills"`
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract text and skills from a pdf or docx resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		zl, err := newLogger()
		if err != nil {
			return err
		}
		defer zl.Sync()

		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}

		text, err := services.NewTextExtractor(nil).Extract(doc)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", args[0], err)
		}

		skills := services.NewSkillExtractor(nil).ExtractSkills(text)
		zl.Debug("document extracted",
			zap.String("file", doc.Filename),
			zap.Int("text_length", len(text)),
			zap.String("preview", logger.Truncate(text, 120)),
		)

		return printJSON(cmd, extractOutput{
			File:       doc.Filename,
			Type:       string(doc.Type),
			TextLength: len(text),
			Skills:     skills,
		})
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func readDocument(path string) (*models.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return models.NewRawDocument(path, data), nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
