package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/JavaChrist/in-shape/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"go.uber.org/zap"
)

var rekClient *rekognition.Client

// must be called once at startup (e.g. in main.go)
func InitRekognition() {
	awsRegion := os.Getenv("AWS_REGION")
	if awsRegion == "" {
		logger.Fatal("AWS_REGION not set")
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		logger.Fatal("unable to load AWS config", zap.Error(err))
	}
	rekClient = rekognition.NewFromConfig(cfg)
}

// ModerateImage runs DetectModerationLabels over raw image bytes and returns
// an error when the picture should be rejected. Confidence below 60 is
// treated as clean.
func ModerateImage(ctx context.Context, imageData []byte) error {
	if rekClient == nil {
		InitRekognition()
	}

	out, err := rekClient.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: imageData},
		MinConfidence: aws.Float32(60),
	})
	if err != nil {
		return fmt.Errorf("moderation check failed: %w", err)
	}

	if len(out.ModerationLabels) > 0 {
		label := aws.ToString(out.ModerationLabels[0].Name)
		return fmt.Errorf("image rejected by moderation: %s", label)
	}
	return nil
}
