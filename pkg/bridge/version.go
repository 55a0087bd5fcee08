package bridge

import "github.com/yaklabco/goharper/pkg/version"

// LibVersion returns the library build version.
func (b *Bridge) LibVersion() ([]byte, error) {
	return outString(version.Library())
}

// CoreVersion returns the engine version, such as "0.4.1".
func (b *Bridge) CoreVersion() ([]byte, error) {
	return outString(version.CoreVersion())
}

// VersionCode returns the engine version as major*10000+minor*100+patch.
func (b *Bridge) VersionCode() int32 {
	return version.Encoded()
}
