package engine

import (
	"errors"
	"testing"
)

func TestValidateVideoID(t *testing.T) {
	for _, id := range []string{"dQw4w9WgXcQ", "a-b_c-d_e-f"} {
		if err := ValidateVideoID(id); err != nil {
			t.Errorf("ValidateVideoID(%q) = %v", id, err)
		}
	}
	for _, id := range []string{"", "short", "dQw4w9WgXcQx", "dQw4w9WgXc!", "https://youtu.be/dQw4w9WgXcQ"} {
		if err := ValidateVideoID(id); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ValidateVideoID(%q) = %v, want ErrInvalidArgument", id, err)
		}
	}
}

func TestValidateChannelID(t *testing.T) {
	if err := ValidateChannelID("UC_x5XG1OV2P6uZZ5FSM9Ttw"); err != nil {
		t.Errorf("valid channel rejected: %v", err)
	}
	for _, id := range []string{"", "UC123", "XX_x5XG1OV2P6uZZ5FSM9Ttw", "@google"} {
		if err := ValidateChannelID(id); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ValidateChannelID(%q) = %v, want ErrInvalidArgument", id, err)
		}
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"  dQw4w9WgXcQ  ", "dQw4w9WgXcQ"},
		{"https://example.com/", ""},
		{"https://youtu.be/tooShort", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExtractVideoID(tt.in); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractChannelID(t *testing.T) {
	const id = "UC_x5XG1OV2P6uZZ5FSM9Ttw"
	tests := []struct {
		in   string
		want string
	}{
		{id, id},
		{"https://www.youtube.com/channel/" + id, id},
		{"https://www.youtube.com/channel/" + id + "/videos", id},
		{"https://www.youtube.com/channel/" + id + "?view=0", id},
		{"https://www.youtube.com/@GoogleDevelopers", ""},
		{"https://www.youtube.com/channel/UCbad", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExtractChannelID(tt.in); got != tt.want {
				t.Errorf("ExtractChannelID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUploadsPlaylistID(t *testing.T) {
	if got := UploadsPlaylistID("UC_x5XG1OV2P6uZZ5FSM9Ttw"); got != "UU_x5XG1OV2P6uZZ5FSM9Ttw" {
		t.Errorf("UploadsPlaylistID = %q", got)
	}
	if got := UploadsPlaylistID("PLxyz"); got != "" {
		t.Errorf("non-channel id should map to empty, got %q", got)
	}
}
