package irq

import "testing"

func TestNumbering(t *testing.T) {
	if USART1 != 37 {
		t.Errorf("USART1 = %d, want 37", USART1)
	}
	if FPU != 81 {
		t.Errorf("FPU = %d, want 81", FPU)
	}
	if int(FPU) != NumIRQ-1 {
		t.Error("FPU is not the last line")
	}
}

func TestNames(t *testing.T) {
	seen := make(map[string]IRQ)
	for i := IRQ(0); i < NumIRQ; i++ {
		name := i.String()
		if name == "" || name == "Unknown" {
			t.Fatalf("irq %d has no name", i)
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("irq %d and %d share the name %s", prev, i, name)
		}
		seen[name] = i
	}
	if got := IRQ(200).String(); got != "Unknown" {
		t.Errorf("String on an unknown line = %q", got)
	}
}

func TestHandlerSymbol(t *testing.T) {
	if got := USART1.HandlerSymbol(); got != "etl_stm32f4xx_usart1_handler" {
		t.Errorf("USART1 handler = %q", got)
	}
	if got := TIM1_TRG_COM_TIM11.HandlerSymbol(); got != "etl_stm32f4xx_tim1_trg_com_tim11_handler" {
		t.Errorf("TIM1_TRG_COM_TIM11 handler = %q", got)
	}
	if got := IRQ(200).HandlerSymbol(); got != "" {
		t.Errorf("HandlerSymbol on an unknown line = %q", got)
	}
}
