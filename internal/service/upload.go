package service

// FileUpload is a file attached to a request. A nil or empty upload means
// no file was sent.
type FileUpload struct {
	Filename string
	Data     []byte
}

func (u *FileUpload) present() bool { return u != nil && len(u.Data) > 0 }
