package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const logoMaxWidth = 512

// CompressImageToWebP: decode (jpeg/png/webp) → resize bila lebih lebar dari
// maxWidth → encode webp lossy.
func CompressImageToWebP(data []byte, maxWidth int, quality float32) ([]byte, error) {
	var img image.Image
	var err error

	if bytes.HasPrefix(data, []byte("RIFF")) {
		img, err = webp.Decode(bytes.NewReader(data))
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("gagal decode gambar: %w", err)
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// UploadLogoImage: baca file multipart, kompres ke webp, upload ke bucket
// storage, kembalikan public URL.
func UploadLogoImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	raw := new(bytes.Buffer)
	if _, err := io.Copy(raw, src); err != nil {
		return "", fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	compressed, err := CompressImageToWebP(raw.Bytes(), logoMaxWidth, 80)
	if err != nil {
		return "", err
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename) + ".webp"
	if err := UploadToStorage("image", filename, "image/webp", bytes.NewBuffer(compressed)); err != nil {
		return "", fmt.Errorf("upload gambar gagal: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		os.Getenv("STORAGE_PROJECT_URL"),
		url.PathEscape(filename),
	)
	return publicURL, nil
}

func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// UploadToStorage: PUT ke object storage (API gaya Supabase Storage).
func UploadToStorage(bucket, filename, contentType string, data *bytes.Buffer) error {
	storageURL := os.Getenv("STORAGE_PROJECT_URL")
	storageKey := os.Getenv("STORAGE_SERVICE_ROLE_KEY")
	if storageURL == "" || storageKey == "" {
		return fmt.Errorf("STORAGE_PROJECT_URL atau STORAGE_SERVICE_ROLE_KEY belum diset")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", storageURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+storageKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
