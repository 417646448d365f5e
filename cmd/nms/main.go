// Command nms decodes a raw detection-output tensor dump and prints the
// surviving bounding boxes as JSON.
//
// The input file is the raw bytes of the model's output tensor (native
// byte order float32), as produced by dumping the output buffer of an
// inference run.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nvr-ai/go-nms/images"
	"github.com/nvr-ai/go-nms/postprocess"
	"github.com/nvr-ai/go-nms/yolo"
)

// detection is the JSON row emitted per surviving box: center+extent
// geometry plus the derived corner form.
type detection struct {
	Box   images.Box `json:"box"`
	X1    int        `json:"x1"`
	Y1    int        `json:"y1"`
	X2    int        `json:"x2"`
	Y2    int        `json:"y2"`
	Score float32    `json:"score"`
	Class int        `json:"class"`
}

func main() {
	var (
		inputPath      string
		family         string
		rows           int
		columns        int
		transpose      bool
		scoreThreshold float64
		iouThreshold   float64
		flat           bool
	)
	flag.StringVar(&inputPath, "input", "", "Path to the raw float32 tensor dump")
	flag.StringVar(&family, "family", "", "Model family preset (yolov8, yolov11); overrides shape flags")
	flag.IntVar(&rows, "rows", 0, "Row count of the buffer as laid out in memory")
	flag.IntVar(&columns, "columns", 0, "Column count of the buffer as laid out in memory")
	flag.BoolVar(&transpose, "transpose", false, "Transpose the decoded matrix before extraction")
	flag.Float64Var(&scoreThreshold, "score", 0.25, "Minimum confidence score")
	flag.Float64Var(&iouThreshold, "iou", 0.45, "IoU threshold for suppression")
	flag.BoolVar(&flat, "flat", false, "Emit flat [cx, cy, w, h, score, class] float rows instead of objects")
	flag.Parse()

	log := logrus.New()

	if inputPath == "" {
		log.Fatal("missing required -input flag")
	}

	params := yolo.Params{
		Rows:           rows,
		Columns:        columns,
		Transpose:      transpose,
		ScoreThreshold: float32(scoreThreshold),
		IoUThreshold:   float32(iouThreshold),
	}
	if family != "" {
		preset, err := yolo.ParamsForFamily(yolo.Family(family))
		if err != nil {
			log.WithError(err).Fatal("unsupported model family")
		}
		preset.ScoreThreshold = float32(scoreThreshold)
		preset.IoUThreshold = float32(iouThreshold)
		params = preset
	}

	buf, err := os.ReadFile(inputPath)
	if err != nil {
		log.WithError(err).Fatal("failed to read tensor dump")
	}

	start := time.Now()
	results, err := yolo.Detect(buf, params)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"rows":    params.Rows,
			"columns": params.Columns,
			"bytes":   len(buf),
		}).Fatal("detection decoding failed")
	}

	log.WithFields(logrus.Fields{
		"rows":       params.Rows,
		"columns":    params.Columns,
		"transpose":  params.Transpose,
		"detections": len(results),
		"elapsed":    time.Since(start),
	}).Info("decoded detections")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if flat {
		if err := enc.Encode(postprocess.Flatten(results)); err != nil {
			log.WithError(err).Fatal("failed to encode results")
		}
		return
	}

	detections := make([]detection, 0, len(results))
	for _, r := range results {
		rect := r.Box.Rect()
		detections = append(detections, detection{
			Box:   r.Box,
			X1:    rect.X1,
			Y1:    rect.Y1,
			X2:    rect.X2,
			Y2:    rect.Y2,
			Score: r.Score,
			Class: r.Class,
		})
	}
	if err := enc.Encode(detections); err != nil {
		log.WithError(err).Fatal("failed to encode results")
	}
}
