package entity

// Well-known field ids. Every service request starts with the three
// header fields and ends with the two trailer fields regardless of
// category; the category only contributes the extras in between.
const (
	FieldProjectCategory    = "project_category"
	FieldServiceType        = "service_type"
	FieldProjectDescription = "project_description"
	FieldPhotosUploaded     = "photos_uploaded"
	FieldProjectLocation    = "project_location"
)
