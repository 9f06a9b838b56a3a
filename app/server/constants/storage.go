package constants

const (
	StorageBackendDisk = "disk"
	StorageBackendS3   = "s3"
)

// Documents
const (
	DocumentKeyPrefix = "documents/"
)

// Extensions accepted for uploaded documents, mapped to the content type served on download.
var DocumentAllowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".odt":  "application/vnd.oasis.opendocument.text",
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}
