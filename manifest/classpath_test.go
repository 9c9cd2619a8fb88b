package manifest

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestClassPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "next line without marker ends the attribute",
			input: "Class-Path: a.jar\nb.jar",
			want:  []string{"a.jar"},
		},
		{
			name:  "single marker joins without separator",
			input: "Class-Path: a.jar\n b.jar\n",
			want:  []string{"a.jarb.jar"},
		},
		{
			name:  "second leading space is a delimiter",
			input: "Class-Path: a.jar\n  b.jar\n",
			want:  []string{"a.jar", "b.jar"},
		},
		{
			name:  "line after attribute end is dropped",
			input: "Class-Path: a.jar b.jar\nc.jar",
			want:  []string{"a.jar", "b.jar"},
		},
		{
			name:  "merged trailing token without proof is discarded",
			input: "Class-Path: a.jar second\n Jar.jar",
			want:  []string{"a.jar"},
		},
		{
			name:  "trailing space confirms merged token",
			input: "Class-Path: a.jar second\n Jar.jar ",
			want:  []string{"a.jar", "secondJar.jar"},
		},
		{
			name:  "trailing newline confirms merged token",
			input: "Class-Path: a.jar second\n Jar.jar\n",
			want:  []string{"a.jar", "secondJar.jar"},
		},
		{
			name:  "unterminated joined token is discarded",
			input: "Class-Path: a.jar\n b.jar",
			want:  nil,
		},
		{
			name:  "unterminated token after delimiter marker is discarded",
			input: "Class-Path: a.jar\n  b.jar",
			want:  []string{"a.jar"},
		},
		{
			name:  "marker at end of input discards pending token",
			input: "Class-Path: a.jar\n ",
			want:  nil,
		},
		{
			name:  "no header",
			input: "Manifest-Version: 1.0\nMain-Class: com.example.Main\n",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "header after other attributes",
			input: "Manifest-Version: 1.0\nClass-Path: lib/x.jar lib/y.jar\nMain-Class: com.example.Main\n",
			want:  []string{"lib/x.jar", "lib/y.jar"},
		},
		{
			name:  "header without separating space is not recognized",
			input: "Class-Path:a.jar\n",
			want:  nil,
		},
		{
			name:  "header name is matched literally",
			input: "class-path: a.jar\n",
			want:  nil,
		},
		{
			name:  "header must start the line",
			input: "X-Class-Path: a.jar\n Class-Path: b.jar\n",
			want:  nil,
		},
		{
			name:  "only the first header is read",
			input: "Class-Path: a.jar\nClass-Path: b.jar\n",
			want:  []string{"a.jar"},
		},
		{
			name:  "consecutive spaces yield no empty tokens",
			input: "Class-Path:   a.jar    b.jar  \n",
			want:  []string{"a.jar", "b.jar"},
		},
		{
			name:  "duplicates are preserved",
			input: "Class-Path: a.jar b.jar a.jar\n",
			want:  []string{"a.jar", "b.jar", "a.jar"},
		},
		{
			name:  "empty value",
			input: "Class-Path: \nMain-Class: com.example.Main\n",
			want:  nil,
		},
		{
			name:  "value starting on a continuation line",
			input: "Class-Path: \n a.jar\n",
			want:  []string{"a.jar"},
		},
		{
			name:  "empty continuation line",
			input: "Class-Path: a\n \n b\n",
			want:  []string{"ab"},
		},
		{
			name:  "token split over several continuation lines",
			input: "Class-Path: lib/com\n mons-lang3-3\n .12.0.jar lib/guava.jar\n",
			want:  []string{"lib/commons-lang3-3.12.0.jar", "lib/guava.jar"},
		},
		{
			name:  "tab is content",
			input: "Class-Path: a.jar\tb.jar\n",
			want:  []string{"a.jar\tb.jar"},
		},
		{
			name:  "multi-byte sequence split by a continuation",
			input: "Class-Path: caf\xc3\n \xa9.jar\n",
			want:  []string{"café.jar"},
		},
		{
			name:  "invalid UTF-8 is replaced",
			input: "Class-Path: \xffa.jar\n",
			want:  []string{"\uFFFDa.jar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassPath(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ClassPath(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ClassPath(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}

			slow, err := ClassPath(iotest.OneByteReader(strings.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("ClassPath(%q) one byte at a time error: %v", tt.input, err)
			}
			if diff := cmp.Diff(got, slow, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ClassPath(%q) depends on read size (-whole +bytewise):\n%s", tt.input, diff)
			}
		})
	}
}

func TestClassPathNeverNil(t *testing.T) {
	got, err := ClassPath(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ClassPath() error: %v", err)
	}
	if got == nil {
		t.Error("ClassPath() = nil, want empty slice")
	}
}

func TestClassPathIdempotent(t *testing.T) {
	input := "Manifest-Version: 1.0\nClass-Path: a.jar second\n Jar.jar  lib/\n x.jar\nCreated-By: test\n"

	first, err := ClassPath(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ClassPath() error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ClassPath(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ClassPath() error: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}

	want := []string{"a.jar", "secondJar.jar", "lib/x.jar"}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("ClassPath() mismatch (-want +got):\n%s", diff)
	}
}

func TestClassPathReaderError(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("immediate", func(t *testing.T) {
		got, err := ClassPath(iotest.ErrReader(errBoom))
		if err != errBoom {
			t.Errorf("ClassPath() error = %v, want %v", err, errBoom)
		}
		if got != nil {
			t.Errorf("ClassPath() = %q, want nil", got)
		}
	})

	t.Run("inside value", func(t *testing.T) {
		r := io.MultiReader(strings.NewReader("Class-Path: a.jar b"), iotest.ErrReader(errBoom))
		if _, err := ClassPath(r); err != errBoom {
			t.Errorf("ClassPath() error = %v, want %v", err, errBoom)
		}
	})

	t.Run("after attribute end", func(t *testing.T) {
		r := io.MultiReader(strings.NewReader("Class-Path: a.jar\nMain-Class: x\n"), iotest.ErrReader(errBoom))
		got, err := ClassPath(r)
		if err != nil {
			t.Fatalf("ClassPath() error = %v, want nil", err)
		}
		if diff := cmp.Diff([]string{"a.jar"}, got); diff != "" {
			t.Errorf("ClassPath() mismatch (-want +got):\n%s", diff)
		}
	})
}
