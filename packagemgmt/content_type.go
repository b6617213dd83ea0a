package packagemgmt

const (
	AndroidPackageContentType = "application/vnd.android.package-archive"
	IOSAppContentType         = "application/x-ios-app"
)

// ContentTypeForExtension returns the content type a package file is
// uploaded with. Only "apk" is recognized; every other extension, including
// "ipa" and unknown ones, is treated as an iOS app.
//
// TODO: decide with the API owners whether unknown extensions should be
// rejected instead of falling back to IOSAppContentType.
func ContentTypeForExtension(extension string) string {
	if extension == "apk" {
		return AndroidPackageContentType
	}
	return IOSAppContentType
}
