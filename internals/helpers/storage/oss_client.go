package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	_ "image/jpeg"
	_ "image/png"
)

const maxUploadSize = int64(10 * 1024 * 1024)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

type Client struct {
	bucket    *oss.Bucket
	publicURL string
}

// NewClientFromEnv crea el cliente OSS con OSS_ENDPOINT, OSS_ACCESS_KEY_ID,
// OSS_ACCESS_KEY_SECRET y OSS_BUCKET.
func NewClientFromEnv() (*Client, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	secret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || secret == "" || bucketName == "" {
		return nil, fmt.Errorf("configuración OSS incompleta")
	}

	cli, err := oss.New(endpoint, keyID, secret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	public := strings.TrimSpace(os.Getenv("OSS_PUBLIC_URL"))
	if public == "" {
		public = fmt.Sprintf("https://%s.%s", bucketName, endpoint)
	}

	return &Client{bucket: bucket, publicURL: strings.TrimRight(public, "/")}, nil
}

func uniqueKey(folder, filename string) string {
	base := filenameSanitizer.ReplaceAllString(filepath.Base(filename), "-")
	return path.Join(folder, fmt.Sprintf("%d-%s-%s", time.Now().Unix(), uuid.NewString()[:8], base))
}

func (s *Client) objectURL(key string) string {
	return s.publicURL + "/" + url.PathEscape(key)
}

// UploadBytes sube contenido arbitrario y devuelve la URL pública.
func (s *Client) UploadBytes(folder, filename, contentType string, data []byte) (string, error) {
	key := uniqueKey(folder, filename)
	if err := s.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return s.objectURL(key), nil
}

// UploadPDF valida que el archivo sea PDF y lo sube (guías en PDF).
func (s *Client) UploadPDF(folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("el archivo supera el límite de %dMB", maxUploadSize/1024/1024)
	}
	data, err := readAll(fh)
	if err != nil {
		return "", err
	}
	ct := http.DetectContentType(sniff(data))
	if !strings.Contains(ct, "pdf") {
		return "", fmt.Errorf("el archivo no es un PDF válido (%s)", ct)
	}
	return s.UploadBytes(folder, fh.Filename, "application/pdf", data)
}

// UploadImageAsWebP decodifica jpeg/png/webp, reescala a un máximo de
// 1600px por lado y sube el resultado como webp.
func (s *Client) UploadImageAsWebP(folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("la imagen supera el límite de %dMB", maxUploadSize/1024/1024)
	}
	data, err := readAll(fh)
	if err != nil {
		return "", err
	}

	img, err := decodeImage(data)
	if err != nil {
		return "", err
	}
	img = imaging.Fit(img, 1600, 1600, imaging.CatmullRom)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename)) + ".webp"
	return s.UploadBytes(folder, name, "image/webp", buf.Bytes())
}

func decodeImage(data []byte) (image.Image, error) {
	ct := http.DetectContentType(sniff(data))
	if strings.Contains(ct, "webp") {
		return webp.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("formato de imagen no soportado: %s", ct)
	}
	return img, nil
}

func sniff(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo: %w", err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo: %w", err)
	}
	return data, nil
}
