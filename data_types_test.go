package main

import (
	"errors"
	"testing"

	"github.com/go-test/deep"
	"gopkg.in/yaml.v3"
)

func TestParseRepository(t *testing.T) {
	type args struct {
		orgAndRepo string
	}
	tests := []struct {
		name    string
		args    args
		want    Repository
		wantErr bool
	}{
		{
			name: "Parses owner and name",
			args: args{orgAndRepo: "octo/widgets"},
			want: Repository{Owner: "octo", Name: "widgets", FullName: "octo/widgets"},
		},
		{
			name:    "Rejects a bare name",
			args:    args{orgAndRepo: "widgets"},
			wantErr: true,
		},
		{
			name:    "Rejects extra separators",
			args:    args{orgAndRepo: "a/b/c"},
			wantErr: true,
		},
		{
			name:    "Rejects an empty owner",
			args:    args{orgAndRepo: "/widgets"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepository(tt.args.orgAndRepo)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRepository() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseRepository() error = %v, want kind %s", err, ErrInvalidInput.Kind)
			}
			if diff := deep.Equal(got, tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestSingleOrMulti(t *testing.T) {
	type doc struct {
		Values SingleOrMulti `yaml:"values"`
	}

	type args struct {
		yaml string
	}
	tests := []struct {
		name string
		args args
		want SingleOrMulti
	}{
		{
			name: "Single scalar becomes a one-element list",
			args: args{yaml: "values: foo"},
			want: SingleOrMulti{"foo"},
		},
		{
			name: "List stays a list",
			args: args{yaml: "values:\n  - foo\n  - bar"},
			want: SingleOrMulti{"foo", "bar"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got doc
			if err := yaml.Unmarshal([]byte(tt.args.yaml), &got); err != nil {
				t.Fatalf("yaml.Unmarshal() error = %v", err)
			}
			if diff := deep.Equal(got.Values, tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestWildcard(t *testing.T) {
	type args struct {
		pattern string
		value   string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{name: "Exact match", args: args{pattern: "repo:octo/widgets", value: "repo:octo/widgets"}, want: true},
		{name: "Star expands", args: args{pattern: "repo:octo/*", value: "repo:octo/widgets"}, want: true},
		{name: "Anchored at both ends", args: args{pattern: "octo", value: "repo:octo/widgets"}, want: false},
		{name: "Regex metacharacters are literal", args: args{pattern: "a.b", value: "axb"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewWildcard(tt.args.pattern).MatchString(tt.args.value); got != tt.want {
				t.Errorf("MatchString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInstallationTokenRedacted(t *testing.T) {
	type args struct {
		token string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "Long tokens keep a prefix", args: args{token: "ghs_16C7e42F292c6912E7710c83"}, want: "ghs_16C7..."},
		{name: "Short tokens are fully hidden", args: args{token: "ghs_1"}, want: "REDACTED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstallationToken{Token: tt.args.token}.Redacted()
			if got != tt.want {
				t.Errorf("Redacted() = %q, want %q", got, tt.want)
			}
		})
	}
}
