package objectstore

// ObjectKind selects which bucket an object lives in.
type ObjectKind string

const (
	ObjectKindDocument ObjectKind = "document"
	ObjectKindLogo     ObjectKind = "logo"
)

type Object struct {
	Key         string     `json:"key"`
	Data        []byte     `json:"data"`
	ContentType string     `json:"content_type"`
	Kind        ObjectKind `json:"kind"`
}

func NewDocumentObject(key string, data []byte, contentType string) *Object {
	return &Object{
		Key:         key,
		Data:        data,
		ContentType: contentType,
		Kind:        ObjectKindDocument,
	}
}

func NewLogoObject(key string, data []byte, contentType string) *Object {
	return &Object{
		Key:         key,
		Data:        data,
		ContentType: contentType,
		Kind:        ObjectKindLogo,
	}
}
