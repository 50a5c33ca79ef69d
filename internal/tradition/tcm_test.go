package tradition

import (
	"reflect"
	"testing"
)

func TestTCM_FullDescription(t *testing.T) {
	window := "Huang Qi (Astragalus) tonifies Qi and strengthens the immune system. " +
		"It enters the Spleen and Lung channels. Temperature is warm, taste is sweet."

	props := NewTCMParser().Extract(window)

	wantChannels := []string{"Spleen", "Lung"}
	if !reflect.DeepEqual(props.Channels, wantChannels) {
		t.Errorf("channels = %v, want %v", props.Channels, wantChannels)
	}
	if props.Temperature != "Warm" {
		t.Errorf("temperature = %q, want Warm", props.Temperature)
	}
	wantTastes := []string{"Sweet"}
	if !reflect.DeepEqual(props.Tastes, wantTastes) {
		t.Errorf("tastes = %v, want %v", props.Tastes, wantTastes)
	}
	wantActions := []string{"Tonifies Qi"}
	if !reflect.DeepEqual(props.Actions, wantActions) {
		t.Errorf("actions = %v, want %v", props.Actions, wantActions)
	}
}

func TestTCM_LabeledChannels(t *testing.T) {
	props := NewTCMParser().Extract("Channels: Lung, Large Intestine")

	want := []string{"Lung", "Large Intestine"}
	if !reflect.DeepEqual(props.Channels, want) {
		t.Errorf("channels = %v, want %v", props.Channels, want)
	}
}

func TestTCM_ChannelsAccumulateAcrossSentences(t *testing.T) {
	props := NewTCMParser().Extract(
		"It enters the Liver channel. Some texts state it also enters the Heart meridian.")

	want := []string{"Liver", "Heart"}
	if !reflect.DeepEqual(props.Channels, want) {
		t.Errorf("channels = %v, want %v", props.Channels, want)
	}
}

func TestTCM_PluralChannelNames(t *testing.T) {
	props := NewTCMParser().Extract("Enters the Lungs and Kidneys.")

	want := []string{"Lung", "Kidney"}
	if !reflect.DeepEqual(props.Channels, want) {
		t.Errorf("channels = %v, want %v", props.Channels, want)
	}
}

func TestTCM_TemperatureFirstWins(t *testing.T) {
	props := NewTCMParser().Extract("Temperature: warm. Later sources call the temperature cold.")

	if props.Temperature != "Warm" {
		t.Errorf("temperature = %q, want the first labeled value", props.Temperature)
	}
}

func TestTCM_TemperatureNature(t *testing.T) {
	props := NewTCMParser().Extract("A classic warming herb for the middle burner.")

	if props.Temperature != "Warm" {
		t.Errorf("temperature = %q, want Warm", props.Temperature)
	}
}

func TestTCM_ActionVerbForms(t *testing.T) {
	props := NewTCMParser().Extract(
		"Used to clear heat, move blood, and calm the Shen.")

	want := []string{"Clears Heat", "Moves Blood", "Calms Shen"}
	if !reflect.DeepEqual(props.Actions, want) {
		t.Errorf("actions = %v, want %v", props.Actions, want)
	}
}

func TestTCM_EmptyWindow(t *testing.T) {
	props := NewTCMParser().Extract("Nothing herbal to see here.")

	if !props.Empty() {
		t.Errorf("expected empty record, got %+v", props)
	}
}
