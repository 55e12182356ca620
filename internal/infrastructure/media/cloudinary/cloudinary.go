package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alimikegami/content-service/config"
	circuitbreaker "github.com/alimikegami/content-service/internal/infrastructure/circuit-breaker"
	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/sony/gobreaker/v2"
)

// Client talks to the Cloudinary upload API. Both calls share one breaker so
// an outage stops hammering the host from every request.
type Client struct {
	cld *cloudinary.Cloudinary
	cb  *gobreaker.CircuitBreaker[string]
}

func CreateCloudinaryClient(conf config.CloudinaryConfig) (*Client, error) {
	cld, err := cloudinary.NewFromParams(conf.CloudName, conf.APIKey, conf.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init error: %w", err)
	}
	cld.Config.URL.Secure = true

	return &Client{
		cld: cld,
		cb:  circuitbreaker.CreateCircuitBreaker[string]("cloudinary"),
	}, nil
}

func (c *Client) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	return c.cb.Execute(func() (string, error) {
		resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
			PublicID: publicID,
		})
		if err != nil {
			return "", err
		}

		if resp.Error.Message != "" {
			return "", errors.New(resp.Error.Message)
		}

		if resp.SecureURL != "" {
			return resp.SecureURL, nil
		}

		return resp.URL, nil
	})
}

func (c *Client) Destroy(ctx context.Context, publicID string) error {
	_, err := c.cb.Execute(func() (string, error) {
		resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
			PublicID: publicID,
		})
		if err != nil {
			return "", err
		}

		if resp.Error.Message != "" {
			return "", errors.New(resp.Error.Message)
		}

		// "not found" means the asset is already gone.
		if resp.Result != "ok" && resp.Result != "not found" {
			return "", fmt.Errorf("destroy %s: %s", publicID, resp.Result)
		}

		return resp.Result, nil
	})

	return err
}
