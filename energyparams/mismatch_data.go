package energyparams

// The tables below are transcribed verbatim from the Turner 1999
// nearest-neighbor parameter measurements (see turner1999RawParams for
// citations). Row 0 of every table is the "no pair" row and stays INF;
// rows 1-7 follow the CG, GC, GU, UG, AU, UA, other pair-type order.

var mismatchI37Data = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, -80, 0}, {0, 0, 0, 0, 0}, {0, -100, 0, -100, 0}, {0, 0, 0, 0, -60}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, -80, 0}, {0, 0, 0, 0, 0}, {0, -100, 0, -100, 0}, {0, 0, 0, 0, -60}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, -10, 70}, {70, 70, 70, 70, 70}, {70, -30, 70, -30, 70}, {70, 70, 70, 70, 10}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, -10, 70}, {70, 70, 70, 70, 70}, {70, -30, 70, -30, 70}, {70, 70, 70, 70, 10}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, -10, 70}, {70, 70, 70, 70, 70}, {70, -30, 70, -30, 70}, {70, 70, 70, 70, 10}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, -10, 70}, {70, 70, 70, 70, 70}, {70, -30, 70, -30, 70}, {70, 70, 70, 70, 10}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, -10, 70}, {70, 70, 70, 70, 70}, {70, -30, 70, -30, 70}, {70, 70, 70, 70, 10}},
}

var mismatchIdHData = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{280, 0, 0, 280, 0}, {0, 0, 0, -340, 0}, {0, 0, 0, 0, 0}, {280, -760, 0, 280, 0}, {0, 0, 0, 0, -580}},
	{{280, 0, 0, 280, 0}, {0, 0, 0, -340, 0}, {0, 0, 0, 0, 0}, {280, -760, 0, 280, 0}, {0, 0, 0, 0, -580}},
	{{790, 500, 500, 790, 500}, {500, 500, 500, 170, 500}, {500, 500, 500, 500, 500}, {790, -260, 500, 790, 500}, {500, 500, 500, 500, -80}},
	{{790, 500, 500, 790, 500}, {500, 500, 500, 170, 500}, {500, 500, 500, 500, 500}, {790, -260, 500, 790, 500}, {500, 500, 500, 500, -80}},
	{{790, 500, 500, 790, 500}, {500, 500, 500, 170, 500}, {500, 500, 500, 500, 500}, {790, -260, 500, 790, 500}, {500, 500, 500, 500, -80}},
	{{790, 500, 500, 790, 500}, {500, 500, 500, 170, 500}, {500, 500, 500, 500, 500}, {790, -260, 500, 790, 500}, {500, 500, 500, 500, -80}},
	{{790, 500, 500, 790, 500}, {500, 500, 500, 170, 500}, {500, 500, 500, 500, 500}, {790, -260, 500, 790, 500}, {500, 500, 500, 500, -80}},
}

var mismatchH37Data = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{-80, -100, -110, -100, -80}, {-140, -150, -150, -140, -150}, {-80, -100, -110, -100, -80}, {-150, -230, -150, -240, -150}, {-100, -100, -140, -100, -210}},
	{{-50, -110, -70, -110, -50}, {-110, -110, -150, -130, -150}, {-50, -110, -70, -110, -50}, {-150, -250, -150, -220, -150}, {-100, -110, -100, -110, -160}},
	{{20, 20, -20, -10, -20}, {20, 20, -50, -30, -50}, {-10, -10, -20, -10, -20}, {-50, -100, -50, -110, -50}, {-10, -10, -30, -10, -100}},
	{{0, -20, -10, -20, 0}, {-30, -50, -30, -60, -30}, {0, -20, -10, -20, 0}, {-30, -90, -30, -110, -30}, {-10, -20, -10, -20, -90}},
	{{-10, -10, -20, -10, -20}, {-30, -30, -50, -30, -50}, {-10, -10, -20, -10, -20}, {-50, -120, -50, -110, -50}, {-10, -10, -30, -10, -120}},
	{{0, -20, -10, -20, 0}, {-30, -50, -30, -50, -30}, {0, -20, -10, -20, 0}, {-30, -150, -30, -150, -30}, {-10, -20, -10, -20, -90}},
	{{20, 20, -10, -10, 0}, {20, 20, -30, -30, -30}, {0, -10, -10, -10, 0}, {-30, -90, -30, -110, -30}, {-10, -10, -10, -10, -90}},
}

var mismatchHdHData = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{560, -570, 560, -560, -270}, {-560, -910, -560, -560, -560}, {-270, -570, -340, -570, -270}, {560, -1400, 560, -920, -560}, {-530, -570, -530, -570, -1440}},
	{{50, -520, 50, -560, -400}, {-400, -520, -400, -560, -400}, {50, -720, 50, -720, -420}, {-400, -1290, -400, -620, -400}, {-30, -720, -30, -720, -1080}},
	{{970, 140, 970, 140, 570}, {570, 30, 570, 20, 570}, {970, 140, 970, 140, 340}, {570, -270, 570, 20, 570}, {830, 140, 830, 140, -50}},
	{{230, 100, 230, 220, 190}, {-110, -110, -260, -520, -260}, {190, -60, -140, -60, 190}, {220, 100, -260, 220, -260}, {230, -60, 230, -60, -70}},
	{{970, 140, 970, 140, 570}, {570, -20, 570, 20, 570}, {970, 140, 970, 140, 340}, {570, -520, 570, 20, 570}, {830, 140, 830, 140, -380}},
	{{230, -30, 230, -60, 190}, {-30, -30, -260, -520, -260}, {190, -60, -140, -60, 190}, {-260, -590, -260, -520, -260}, {230, -60, 230, -60, -70}},
	{{970, 140, 970, 220, 570}, {570, 30, 570, 20, 570}, {970, 140, 970, 140, 340}, {570, 100, 570, 220, 570}, {830, 140, 830, 140, -50}},
}

var mismatchM37Data = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{-80, -100, -110, -100, -80}, {-140, -150, -150, -140, -150}, {-80, -100, -110, -100, -80}, {-140, -140, -150, -160, -150}, {-100, -100, -140, -100, -120}},
	{{-50, -110, -70, -110, -50}, {-110, -110, -150, -130, -150}, {-50, -110, -70, -110, -50}, {-140, -160, -150, -140, -150}, {-70, -110, -100, -110, -70}},
	{{-30, -30, -70, -60, -60}, {-30, -30, -100, -80, -100}, {-60, -60, -70, -60, -70}, {-60, -60, -100, -80, -100}, {-60, -60, -80, -60, -60}},
	{{-50, -50, -60, -70, -50}, {-80, -100, -80, -110, -80}, {-50, -70, -60, -70, -50}, {-50, -50, -80, -80, -80}, {-50, -70, -60, -70, -50}},
	{{-60, -60, -70, -60, -70}, {-80, -80, -100, -80, -100}, {-60, -60, -70, -60, -70}, {-80, -80, -100, -80, -100}, {-60, -60, -80, -60, -80}},
	{{-50, -70, -60, -70, -50}, {-80, -100, -80, -110, -80}, {-50, -70, -60, -70, -50}, {-80, -110, -80, -120, -80}, {-50, -70, -60, -70, -50}},
	{{-30, -30, -60, -60, -50}, {-30, -30, -80, -80, -80}, {-50, -60, -60, -60, -50}, {-50, -50, -80, -80, -80}, {-50, -60, -60, -60, -50}},
}

var mismatchMdHData = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{-270, -570, -340, -560, -270}, {-560, -910, -560, -560, -560}, {-270, -570, -340, -570, -270}, {-560, -820, -560, -920, -560}, {-530, -570, -530, -570, -860}},
	{{50, -520, 50, -560, -400}, {-400, -520, -400, -560, -400}, {50, -720, 50, -720, -420}, {-400, -710, -400, -620, -400}, {-30, -720, -30, -720, -500}},
	{{600, -60, 600, -230, 200}, {200, -340, 200, -350, 200}, {600, -230, 600, -230, -30}, {200, -60, 200, -350, 200}, {460, -230, 460, -230, 160}},
	{{310, 310, -140, -150, 140}, {-480, -480, -630, -890, -630}, {-180, -430, -510, -430, -180}, {310, 310, -630, -150, -630}, {140, -430, -140, -430, 140}},
	{{600, -230, 600, -230, 200}, {200, -390, 200, -350, 200}, {600, -230, 600, -230, -30}, {200, -310, 200, -350, 200}, {460, -230, 460, -230, -170}},
	{{140, -380, -140, -430, 140}, {-400, -400, -630, -890, -630}, {-180, -430, -510, -430, -180}, {-380, -380, -630, -890, -630}, {140, -430, -140, -430, 140}},
	{{600, 310, 600, -150, 200}, {200, -340, 200, -350, 200}, {600, -230, 600, -230, -30}, {310, 310, 200, -150, 200}, {460, -230, 460, -230, 160}},
}

// mismatchExt shares the same published values as mismatchM in the 1999 set.
var mismatchExt37Data = mismatchM37Data
var mismatchExtdHData = mismatchMdHData

var mismatch1nI37Data = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}},
}

var mismatch1nIdHData = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}},
}

var mismatch23I37Data = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, -50, 0}, {0, 0, 0, 0, 0}, {0, -110, 0, -70, 0}, {0, 0, 0, 0, -30}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, -120, 0, -70, 0}, {0, 0, 0, 0, -30}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, -40, 70, 0, 70}, {70, 70, 70, 70, 40}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 20, 70}, {70, 70, 70, 70, 70}, {70, -40, 70, 0, 70}, {70, 70, 70, 70, 40}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, -40, 70, 0, 70}, {70, 70, 70, 70, 40}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 20, 70}, {70, 70, 70, 70, 70}, {70, -40, 70, 0, 70}, {70, 70, 70, 70, 40}},
	{{70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, 70, 70, 70, 70}, {70, -40, 70, 0, 70}, {70, 70, 70, 70, 40}},
}

var mismatch23IdHData = [NbPairTypes + 1][5][5]int{
	{{INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}, {INF, INF, INF, INF, INF}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, -570, 0}, {0, 0, 0, 0, 0}, {0, -860, 0, -900, 0}, {0, 0, 0, 0, -640}},
	{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, -1090, 0, -900, 0}, {0, 0, 0, 0, -640}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, -580, 500, -400, 500}, {500, 500, 500, 500, -140}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, -60, 500}, {500, 500, 500, 500, 500}, {500, -360, 500, -400, 500}, {500, 500, 500, 500, -140}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, -580, 500, -400, 500}, {500, 500, 500, 500, -140}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, -60, 500}, {500, 500, 500, 500, 500}, {500, -360, 500, -400, 500}, {500, 500, 500, 500, -140}},
	{{500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, 500, 500, 500, 500}, {500, -360, 500, -400, 500}, {500, 500, 500, 500, -140}},
}

var dangle3_37Data = [NbPairTypes + 1][5]int{
	{INF, INF, INF, INF, INF},
	{-80, -170, -80, -170, -120},
	{-40, -110, -40, -130, -60},
	{-50, -80, -50, -80, -60},
	{-10, -70, -10, -70, -10},
	{-50, -80, -50, -80, -60},
	{-10, -70, -10, -70, -10},
	{-10, -70, -10, -70, -10},
}

var dangle3dHData = [NbPairTypes + 1][5]int{
	{INF, INF, INF, INF, INF},
	{-410, -900, -410, -860, -750},
	{-280, -740, -280, -640, -360},
	{-90, -490, -90, -550, -230},
	{-70, -570, -70, -580, -220},
	{-90, -490, -90, -550, -230},
	{-70, -570, -70, -580, -220},
	{-70, -490, -70, -550, -220},
}

var dangle5_37Data = [NbPairTypes + 1][5]int{
	{INF, INF, INF, INF, INF},
	{0, -20, -30, 0, 0},
	{-10, -50, -30, -20, -10},
	{-10, -30, -10, -20, -20},
	{-20, -30, -30, -40, -20},
	{-10, -30, -10, -20, -20},
	{-20, -30, -30, -40, -20},
	{0, -20, -10, 0, 0},
}

var dangle5dHData = [NbPairTypes + 1][5]int{
	{INF, INF, INF, INF, INF},
	{70, -160, 70, -460, -40},
	{330, -240, 330, 80, -140},
	{690, -50, 690, 60, 60},
	{310, 160, 220, 70, 310},
	{690, -50, 690, 60, 60},
	{310, 160, 220, 70, 310},
	{690, 160, 690, 80, 310},
}
