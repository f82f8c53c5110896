package udg

import (
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	udgimage "github.com/bodgit/udg/image"
	"github.com/bodgit/udg/raster"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Extension is the file extension used for UDG images
const Extension = ".udg"

var imageExtensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

func (u *UDG) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, other than the base itself
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if _, ok := imageExtensions[strings.ToLower(filepath.Ext(file))]; !ok {
				if filepath.Ext(file) != Extension {
					u.logger.Printf("Skipping \"%s\"\n", file)
				}
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func convertFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return "", err
	}

	r, err := udgimage.FromImage(m)
	if err != nil {
		return "", err
	}

	target := strings.TrimSuffix(file, filepath.Ext(file)) + Extension
	w, err := os.Create(target)
	if err != nil {
		return "", err
	}

	if err := udgimage.Encode(w, r, raster.Normal); err != nil {
		w.Close()
		return "", err
	}

	return target, w.Close()
}

func (u *UDG) imageWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			target, err := convertFile(file)
			if err != nil {
				errc <- err
				return
			}
			u.logger.Printf("Converted \"%s\" to \"%s\"\n", file, target)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Convert walks path and converts every image file found into a UDG image
// written alongside it with the same name and a .udg extension. Images are
// reduced to two colors, the lighter of which becomes the foreground.
func (u *UDG) Convert(path string) error {
	base, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := u.findImages(ctx, base)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errc, err := u.imageWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
