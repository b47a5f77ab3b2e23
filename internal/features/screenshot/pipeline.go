// Package screenshot analyzes uploaded screenshots for scam content:
// OCR extraction, text classification, and gallery persistence of
// high-risk captures.
package screenshot

import (
	"context"

	"github.com/rajendra-kc/scamlens/internal/features/classify"
	"github.com/rajendra-kc/scamlens/internal/features/risk"
	"github.com/rajendra-kc/scamlens/internal/pkg/logger"
)

// HighRiskThreshold is the probability at which an analyzed screenshot is
// persisted to the public scam gallery.
const HighRiskThreshold = 0.80

const unreadableExplanation = "No text could be extracted from the image. Please ensure the image is clear and contains readable text."

// Store persists analyzed screenshots. Persistence is best-effort: a storage
// failure degrades the response (no image_url), it never fails the analysis.
type Store interface {
	SaveScreenshot(ctx context.Context, data []byte, filename string, highRisk bool) (url, path string, err error)
}

// Analysis is the pipeline result returned to the client
type Analysis struct {
	ExtractedText    string   `json:"extracted_text"`
	ScamProbability  float64  `json:"scam_probability"`
	RiskLevel        string   `json:"risk_level"`
	DetectedKeywords []string `json:"detected_keywords"`
	Explanation      string   `json:"explanation"`
	ImageURL         string   `json:"image_url,omitempty"`
	StoragePath      string   `json:"storage_path,omitempty"`
}

// Pipeline orchestrates OCR, classification and gallery persistence
type Pipeline struct {
	ocr   OCR
	store Store // nil when gallery storage is not configured
}

func NewPipeline(ocr OCR, store Store) *Pipeline {
	return &Pipeline{
		ocr:   ocr,
		store: store,
	}
}

// Analyze runs one screenshot through the pipeline. OCR failures and
// unreadable images produce a zero-probability result with an explanation,
// not an error: a blurry photo is an answer, not a fault.
func (p *Pipeline) Analyze(ctx context.Context, image []byte, filename, contentType string) *Analysis {
	text, err := p.ocr.ExtractText(ctx, image, contentType)
	if err != nil {
		logger.Warn("ocr extraction failed for %s: %v", filename, err)
		text = ""
	}

	if text == "" {
		return &Analysis{
			ExtractedText:    "",
			ScamProbability:  0,
			RiskLevel:        risk.LevelLow,
			DetectedKeywords: []string{},
			Explanation:      unreadableExplanation,
		}
	}

	result, err := classify.Classify(text)
	if err != nil {
		// Classify only rejects blank input, which is handled above
		logger.Error("classification failed for %s: %v", filename, err)
		return &Analysis{
			ExtractedText:    text,
			ScamProbability:  0,
			RiskLevel:        risk.LevelLow,
			DetectedKeywords: []string{},
			Explanation:      unreadableExplanation,
		}
	}

	keywords := result.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	analysis := &Analysis{
		ExtractedText:    text,
		ScamProbability:  result.Probability,
		RiskLevel:        risk.Level(result.Probability),
		DetectedKeywords: keywords,
		Explanation:      result.Explanation,
	}

	if p.store != nil {
		highRisk := result.Probability >= HighRiskThreshold

		url, path, err := p.store.SaveScreenshot(ctx, image, filename, highRisk)
		if err != nil {
			logger.Warn("screenshot persistence failed for %s: %v", filename, err)
		} else {
			analysis.ImageURL = url
			analysis.StoragePath = path
		}
	}

	return analysis
}
