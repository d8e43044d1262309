//go:build !release
// +build !release

package resources

const configDir = ".test64"

func resourcePath() (string, error) {
	return configDir, nil
}
