package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// DownloadImage fetches the image at url into a temporary file. The caller
// owns the returned file and is responsible for removing it.
func DownloadImage(url string) (*os.File, error) {
	res, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to download image file from URI: %s: %v", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download image file from URI: %s, status %v", url, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "blurlock-*")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %v", err)
	}

	// Copy the image binary data into the temporary file.
	if _, err = io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %v", err)
	}
	if _, err = tmpfile.Seek(0, io.SeekStart); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("unable to rewind the temporary file: %v", err)
	}
	return tmpfile, nil
}
