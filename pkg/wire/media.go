package wire

// PhotoSize is one size of a photo or a file/sticker thumbnail.
type PhotoSize struct {
	FileID   string `json:"file_id"`
	Width    int64  `json:"width"`
	Height   int64  `json:"height"`
	FileSize *int64 `json:"file_size,omitempty"`
}

// Audio is an audio file treated as music by Telegram clients.
type Audio struct {
	FileID string `json:"file_id"`
	// Duration in seconds as defined by the sender.
	Duration  int64   `json:"duration"`
	Performer *string `json:"performer,omitempty"`
	Title     *string `json:"title,omitempty"`
	MIMEType  *string `json:"mime_type,omitempty"`
	FileSize  *int64  `json:"file_size,omitempty"`
}

// Document is a general file, as opposed to photos, voice notes and audio.
type Document struct {
	FileID   string     `json:"file_id"`
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	FileName *string    `json:"file_name,omitempty"`
	MIMEType *string    `json:"mime_type,omitempty"`
	FileSize *int64     `json:"file_size,omitempty"`
}

// Sticker is a sticker image.
type Sticker struct {
	FileID string `json:"file_id"`
	Width  int64  `json:"width"`
	Height int64  `json:"height"`
	// Thumbnail in .webp or .jpg format.
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	Emoji    *string    `json:"emoji,omitempty"`
	FileSize *int64     `json:"file_size,omitempty"`
}

// Video is a video file.
type Video struct {
	FileID   string     `json:"file_id"`
	Width    int64      `json:"width"`
	Height   int64      `json:"height"`
	Duration int64      `json:"duration"`
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	MIMEType *string    `json:"mime_type,omitempty"`
	FileSize *int64     `json:"file_size,omitempty"`
}

// Voice is a voice note.
type Voice struct {
	FileID   string  `json:"file_id"`
	Duration int64   `json:"duration"`
	MIMEType *string `json:"mime_type,omitempty"`
	FileSize *int64  `json:"file_size,omitempty"`
}

// Contact is a shared phone contact.
type Contact struct {
	PhoneNumber string  `json:"phone_number"`
	FirstName   string  `json:"first_name"`
	LastName    *string `json:"last_name,omitempty"`
	// Telegram account of the contact, when one exists.
	UserID *UserID `json:"user_id,omitempty"`
}

// Location is a point on the map.
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Venue is a location with a name attached.
type Venue struct {
	Location Location `json:"location"`
	Title    string   `json:"title"`
	Address  string   `json:"address"`
	// Foursquare identifier of the venue.
	FoursquareID *string `json:"foursquare_id,omitempty"`
}

// File is a file ready to be downloaded via the file endpoint. The download
// link is valid for at least one hour.
type File struct {
	FileID   string  `json:"file_id"`
	FileSize *int64  `json:"file_size,omitempty"`
	FilePath *string `json:"file_path,omitempty"`
}

// UserProfilePhotos is one page of a user's profile pictures.
type UserProfilePhotos struct {
	// Total number of profile pictures the user has.
	TotalCount int64 `json:"total_count"`
	// Requested pictures, in up to 4 sizes each.
	Photos [][]PhotoSize `json:"photos"`
}
