package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type scoreOutput struct {
	File          string   `json:"file"`
	Scorer        string   `json:"scorer"`
	Score         int      `json:"score"`
	ResumeSkills  []string `json:"resume_skills"`
	MatchedSkills []string `json:"matched_skills"`
	Reasons       []string `json:"reasons,omitempty"`
}

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score a resume against a comma separated skill profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		zl, err := newLogger()
		if err != nil {
			return err
		}
		defer zl.Sync()

		scorer, err := services.NewScorer(viper.GetString("scorer"))
		if err != nil {
			return err
		}

		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}

		text, err := services.NewTextExtractor(nil).Extract(doc)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", args[0], err)
		}

		candidate := services.Candidate{
			Text:   text,
			Skills: services.NewSkillExtractor(nil).ExtractSkills(text),
		}
		job := &models.Job{
			Title:  "command line profile",
			Skills: viper.GetString("skills"),
			Status: models.JobStatusActive,
		}

		result := scorer.Score(candidate, job)
		zl.Debug("resume scored",
			zap.String("scorer", scorer.Name()),
			zap.Strings("profile", job.SkillProfile()),
			zap.Int("score", result.Score),
		)

		return printJSON(cmd, scoreOutput{
			File:          doc.Filename,
			Scorer:        scorer.Name(),
			Score:         result.Score,
			ResumeSkills:  candidate.Skills,
			MatchedSkills: result.MatchedSkills,
			Reasons:       result.Reasons,
		})
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("skills", "s", "", "comma separated skills the job requires")
	scoreCmd.Flags().String("scorer", services.ScorerOverlap, "scoring strategy: overlap or weighted")

	for _, key := range []string{"skills", "scorer"} {
		if err := viper.BindPFlag(key, scoreCmd.Flags().Lookup(key)); err != nil {
			log.Fatalf("binding %s flag: %v", key, err)
		}
	}
}
