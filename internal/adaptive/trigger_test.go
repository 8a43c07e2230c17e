package adaptive

import "testing"

func TestTriggerPolicy_DefaultCadence(t *testing.T) {
	p := DefaultTriggerPolicy()

	fires := map[int]bool{5: true, 10: true, 15: true, 20: true, 25: true, 30: true, 35: true, 40: true, 45: true, 50: true}
	for n := 0; n <= 50; n++ {
		if got := p.ShouldAnalyze(n); got != fires[n] {
			t.Errorf("ShouldAnalyze(%d) = %v, want %v", n, got, fires[n])
		}
	}
}

func TestTriggerPolicy_CustomInterval(t *testing.T) {
	p := TriggerPolicy{MinUserTurns: 1, Interval: 2}
	for n, want := range map[int]bool{0: false, 1: false, 2: true, 3: false, 4: true} {
		if got := p.ShouldAnalyze(n); got != want {
			t.Errorf("ShouldAnalyze(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestTriggerPolicy_ZeroIntervalNeverFires(t *testing.T) {
	p := TriggerPolicy{MinUserTurns: 0, Interval: 0}
	for n := 0; n <= 20; n++ {
		if p.ShouldAnalyze(n) {
			t.Fatalf("ShouldAnalyze(%d) = true with zero interval", n)
		}
	}
}

func TestTriggerPolicy_Deterministic(t *testing.T) {
	p := DefaultTriggerPolicy()
	for i := 0; i < 3; i++ {
		if !p.ShouldAnalyze(10) {
			t.Fatal("ShouldAnalyze(10) should be true on every evaluation")
		}
	}
}
