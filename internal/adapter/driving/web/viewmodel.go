package web

import (
	vm "github.com/ericfisherdev/passkeep/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/passkeep/internal/application"
	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

// generatorMaxLength caps the GUI length input. The generator itself only
// enforces the minimum.
const generatorMaxLength = 16

// toStrengthViewModel converts a scored password into its banner and tips.
func toStrengthViewModel(result model.StrengthResult) vm.StrengthViewModel {
	strength := result.Strength()

	var label, tone string
	switch strength {
	case model.StrengthStrong:
		label, tone = "Strong Password", "success"
	case model.StrengthMedium:
		label, tone = "Medium Password", "warning"
	default:
		label, tone = "Weak Password", "error"
	}

	return vm.StrengthViewModel{
		Classification: string(strength),
		Label:          label,
		Tone:           tone,
		Score:          result.Score,
		MaxScore:       model.MaxStrengthScore,
		Tips:           result.Tips,
	}
}

// newGeneratorViewModel returns the generator form in its initial state:
// every class selected and the configured default length.
func newGeneratorViewModel(defaultLength int) vm.GeneratorViewModel {
	return vm.GeneratorViewModel{
		Length:    defaultLength,
		MinLength: application.MinGeneratedLength,
		MaxLength: generatorMaxLength,
		Upper:     true,
		Lower:     true,
		Digits:    true,
		Special:   true,
	}
}

// toCredentialViewModels converts stored credentials for the saved panel.
func toCredentialViewModels(creds []model.Credential) []vm.CredentialViewModel {
	out := make([]vm.CredentialViewModel, 0, len(creds))
	for _, c := range creds {
		out = append(out, vm.CredentialViewModel{
			ID:       c.ID,
			Site:     c.Site,
			Username: c.Username,
			Password: c.Password,
		})
	}
	return out
}

// savedToggle returns the link target and label that flip the saved panel.
func savedToggle(visible bool) (url, label string) {
	if visible {
		return "/", "Hide Saved Passwords"
	}
	return "/?saved=1", "Show Saved Passwords"
}
