package cerf

import (
	"math"
	"testing"
)

// TestErfGoldenVectors checks Erf against reference values evaluated
// with Maple. The vectors exercise all four quadrants, the Taylor
// branches near the origin, the near-imaginary-axis strip, and the
// overflow region where erf saturates or blows up.
func TestErfGoldenVectors(t *testing.T) {
	tests := []struct {
		z, want complex128
	}{
		{complex(1, 2),
			complex(-0.5366435657785650339917955593141927494421, -5.049143703447034669543036958614140565553)},
		{complex(-1, 2),
			complex(0.5366435657785650339917955593141927494421, -5.049143703447034669543036958614140565553)},
		{complex(1, -2),
			complex(-0.5366435657785650339917955593141927494421, 5.049143703447034669543036958614140565553)},
		{complex(-1, -2),
			complex(0.5366435657785650339917955593141927494421, 5.049143703447034669543036958614140565553)},
		{complex(9, -28),
			complex(0.3359473673830576996788000505817956637777e304, -0.1999896139679880888755589794455069208455e304)},
		{complex(21, -33),
			complex(0.3584459971462946066523939204836760283645e278, 0.3818954885257184373734213077678011282505e280)},
		{complex(1e3, 1e3),
			complex(0.9996020422657148639102150147542224526887, 0.00002801044116908227889681753993542916894856)},
		{complex(-3001, -1000), complex(-1, 0)},
		{complex(1e160, -1e159), complex(1, 0)},
		{complex(5.1e-3, 1e-8),
			complex(0.005754683859034800134412990541076554934877, 0.1128349818335058741511924929801267822634e-7)},
		{complex(-4.9e-3, 4.95e-3),
			complex(-0.005529149142341821193633460286828381876955, 0.005585388387864706679609092447916333443570)},
		{complex(4.9e-3, 0.5),
			complex(0.007099365669981359632319829148438283865814, 0.6149347012854211635026981277569074001219)},
		{complex(4.9e-4, -0.5e1),
			complex(0.3981176338702323417718189922039863062440e8, -0.8298176341665249121085423917575122140650e10)},
		{complex(-4.9e-5, -0.5e2), complex(math.Inf(-1), math.Inf(-1))},
		{complex(5.1e-3, 0.5),
			complex(0.007389128308257135427153919483147229573895, 0.6149332524601658796226417164791221815139)},
		{complex(5.1e-4, -0.5e1),
			complex(0.4143671923267934479245651547534414976991e8, -0.8298168216818314211557046346850921446950e10)},
		{complex(-5.1e-5, -0.5e2), complex(math.Inf(-1), math.Inf(-1))},
		{complex(1e-6, 2e-6),
			complex(0.1128379167099649964175513742247082845155e-5, 0.2256758334191777400570377193451519478895e-5)},
		{complex(0, 2e-6), complex(0, 0.2256758334194034158904576117253481476197e-5)},
		{complex(0, 2), complex(0, 18.56480241457555259870429191324101719886)},
		{complex(0, 20), complex(0, 0.1474797539628786202447733153131835124599e173)},
		{complex(0, 200), complex(0, math.Inf(1))},
		{complex(7e-2, 7e-2),
			complex(0.07924380404615782687930591956705225541145, 0.07872776218046681145537914954027729115247)},
		{complex(7e-2, -7e-4),
			complex(0.07885775828512276968931773651224684454495, -0.0007860046704118224342390725280161272277506)},
		{complex(-9e-2, 7e-4),
			complex(-0.1012806432747198859687963080684978759881, 0.0007834934747022035607566216654982820299469)},
		{complex(-9e-2, 9e-2),
			complex(-0.1020998418798097910247132140051062512527, 0.1010030778892310851309082083238896270340)},
		{complex(-7e-4, 9e-2),
			complex(-0.0007962891763147907785684591823889484764272, 0.1018289385936278171741809237435404896152)},
		{complex(7e-2, 0.9e-2),
			complex(0.07886408666470478681566329888615410479530, 0.01010604288780868961492224347707949372245)},
		{complex(7e-2, 1.1e-2),
			complex(0.07886723099940260286824654364807981336591, 0.01235199327873258197931147306290916629654)},
	}
	for _, tt := range tests {
		checkZ(t, "Erf", tt.z, Erf(tt.z), tt.want, 1e-13)
	}
}

// TestErfSpecialValues pins the IEEE special cases of Erf: the real
// and imaginary axis limits stay exact, off-axis infinities have no
// limit and yield NaN.
func TestErfSpecialValues(t *testing.T) {
	tests := []struct {
		name    string
		z, want complex128
	}{
		{"+inf on real axis", complex(inf, 0), complex(1, 0)},
		{"-inf on real axis", complex(-inf, 0), complex(-1, 0)},
		{"+inf on imag axis", complex(0, inf), complex(0, inf)},
		{"-inf on imag axis", complex(0, -inf), complex(0, -inf)},
		{"inf+inf", complex(inf, inf), complex(nan, nan)},
		{"inf-inf", complex(inf, -inf), complex(nan, nan)},
		{"nan+nan", complex(nan, nan), complex(nan, nan)},
		{"nan on real axis", complex(nan, 0), complex(nan, 0)},
		{"nan on imag axis", complex(0, nan), complex(0, nan)},
		{"nan+inf", complex(nan, inf), complex(nan, nan)},
		{"inf+nan", complex(inf, nan), complex(nan, nan)},
		{"finite+nan", complex(1e-3, nan), complex(nan, nan)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkZ(t, "Erf", tt.z, Erf(tt.z), tt.want, 1e-13)
		})
	}
}

// TestErfcGoldenVectors checks Erfc against reference values evaluated
// with Maple, including the exact underflow to 0 and saturation at 2
// on the real axis.
func TestErfcGoldenVectors(t *testing.T) {
	tests := []struct {
		z, want complex128
	}{
		{complex(1, 2),
			complex(1.536643565778565033991795559314192749442, 5.049143703447034669543036958614140565553)},
		{complex(-1, 2),
			complex(0.4633564342214349660082044406858072505579, 5.049143703447034669543036958614140565553)},
		{complex(1, -2),
			complex(1.536643565778565033991795559314192749442, -5.049143703447034669543036958614140565553)},
		{complex(-1, -2),
			complex(0.4633564342214349660082044406858072505579, -5.049143703447034669543036958614140565553)},
		{complex(9, -28),
			complex(-0.3359473673830576996788000505817956637777e304, 0.1999896139679880888755589794455069208455e304)},
		{complex(21, -33),
			complex(-0.3584459971462946066523939204836760283645e278, -0.3818954885257184373734213077678011282505e280)},
		{complex(1e3, 1e3),
			complex(0.0003979577342851360897849852457775473112748, -0.00002801044116908227889681753993542916894856)},
		{complex(-3001, -1000), complex(2, 0)},
		{complex(1e160, -1e159), complex(0, 0)},
		{complex(5.1e-3, 1e-8),
			complex(0.9942453161409651998655870094589234450651, -0.1128349818335058741511924929801267822634e-7)},
		{complex(0, 2e-6), complex(1, -0.2256758334194034158904576117253481476197e-5)},
		{complex(0, 2), complex(1, -18.56480241457555259870429191324101719886)},
		{complex(0, 20), complex(1, -0.1474797539628786202447733153131835124599e173)},
		{complex(0, 200), complex(1, math.Inf(-1))},
		{complex(2e-6, 0), complex(0.9999977432416658119838633199332831406314, 0)},
		{complex(2, 0), complex(0.004677734981047265837930743632747071389108, 0)},
		{complex(20, 0), complex(0.5395865611607900928934999167905345604088e-175, 0)},
		{complex(200, 0), complex(0, 0)},
		{complex(88, 0), complex(0, 0)},
	}
	for _, tt := range tests {
		checkZ(t, "Erfc", tt.z, Erfc(tt.z), tt.want, 1e-13)
	}
}

// TestErfcSpecialValues pins the IEEE special cases of Erfc.
func TestErfcSpecialValues(t *testing.T) {
	tests := []struct {
		name    string
		z, want complex128
	}{
		{"+inf on real axis", complex(inf, 0), complex(0, 0)},
		{"-inf on real axis", complex(-inf, 0), complex(2, 0)},
		{"+inf on imag axis", complex(0, inf), complex(1, -inf)},
		{"-inf on imag axis", complex(0, -inf), complex(1, inf)},
		{"inf+inf", complex(inf, inf), complex(nan, nan)},
		{"inf-inf", complex(inf, -inf), complex(nan, nan)},
		{"nan+nan", complex(nan, nan), complex(nan, nan)},
		{"nan on real axis", complex(nan, 0), complex(nan, 0)},
		{"nan on imag axis", complex(0, nan), complex(1, nan)},
		{"nan+inf", complex(nan, inf), complex(nan, nan)},
		{"inf+nan", complex(inf, nan), complex(nan, nan)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkZ(t, "Erfc", tt.z, Erfc(tt.z), tt.want, 1e-13)
		})
	}
}

// TestDawsonGoldenVectors checks Dawson against reference values
// evaluated with Maple. The tail of the table walks the near-real-axis
// expansion through all of its magnitude branches, up to the extreme
// point 1e300 + 2.4e-303i where the leading reciprocal form is the
// only representation that neither overflows nor underflows.
func TestDawsonGoldenVectors(t *testing.T) {
	tests := []struct {
		z, want complex128
	}{
		{complex(2, 1),
			complex(0.1635394094345355614904345232875688576839, -0.1531245755371229803585918112683241066853)},
		{complex(-2, 1),
			complex(-0.1635394094345355614904345232875688576839, -0.1531245755371229803585918112683241066853)},
		{complex(2, -1),
			complex(0.1635394094345355614904345232875688576839, 0.1531245755371229803585918112683241066853)},
		{complex(-2, -1),
			complex(-0.1635394094345355614904345232875688576839, 0.1531245755371229803585918112683241066853)},
		{complex(-28, 9),
			complex(-0.01619082256681596362895875232699626384420, -0.005210224203359059109181555401330902819419)},
		{complex(33, -21),
			complex(0.01078377080978103125464543240346760257008, 0.006866888783433775382193630944275682670599)},
		{complex(1e3, 1e3),
			complex(-0.5808616819196736225612296471081337245459, 0.6688593905505562263387760667171706325749)},
		{complex(-1000, -3001), complex(math.Inf(1), math.Inf(-1))},
		{complex(1e-8, 5.1e-3),
			complex(0.1000052020902036118082966385855563526705e-7, 0.005100088434920073153418834680320146441685)},
		{complex(4.95e-3, -4.9e-3),
			complex(0.004950156837581592745389973960217444687524, -0.004899838305155226382584756154100963570500)},
		{complex(5.1e-3, 5.1e-3),
			complex(0.005100176864319675957314822982399286703798, 0.005099823128319785355949825238269336481254)},
		{complex(0.5, 4.9e-3),
			complex(0.4244534840871830045021143490355372016428, 0.002820278933186814021399602648373095266538)},
		{complex(-0.5e1, 4.9e-4),
			complex(-0.1021340733271046543881236523269967674156, -0.00001045696456072005761498961861088944159916)},
		{complex(-0.5e2, -4.9e-5),
			complex(-0.01000200120119206748855061636187197886859, 0.9805885888237419500266621041508714123763e-8)},
		{complex(0.5e3, 4.9e-6),
			complex(0.001000002000012000023960527532953151819595, -0.9800058800588007290937355024646722133204e-11)},
		{complex(0.5, 5.1e-3),
			complex(0.4244549085628511778373438768121222815752, 0.002935393851311701428647152230552122898291)},
		{complex(-0.5e1, 5.1e-4),
			complex(-0.1021340732357117208743299813648493928105, -0.00001088377943049851799938998805451564893540)},
		{complex(-0.5e2, -5.1e-5),
			complex(-0.01000200120119126652710792390331206563616, 0.1020612612857282306892368985525393707486e-7)},
		{complex(1e-6, 2e-6),
			complex(0.1000000000007333333333344266666666664457e-5, 0.2000000000001333333333323199999999978819e-5)},
		{complex(2e-6, 0), complex(0.1999999999994666666666675199999999990248e-5, 0)},
		{complex(2, 0), complex(0.3013403889237919660346644392864226952119, 0)},
		{complex(20, 0), complex(0.02503136792640367194699495234782353186858, 0)},
		{complex(200, 0), complex(0.002500031251171948248596912483183760683918, 0)},
		{complex(0, 4.9e-3), complex(0, 0.004900078433419939164774792850907128053308)},
		{complex(0, -5.1e-3), complex(0, -0.005100088434920074173454208832365950009419)},
		{complex(0, 2e-6), complex(0, 0.2000000000005333333333341866666666676419e-5)},
		{complex(0, -2), complex(0, -48.16001211429122974789822893525016528191)},
		{complex(0, 20), complex(0, 0.4627407029504443513654142715903005954668e174)},
		{complex(0, -200), complex(0, math.Inf(-1))},
		{complex(39, 6.4e-5),
			complex(0.01282473148489433743567240624939698290584, -0.2105957276516618621447832572909153498104e-7)},
		{complex(41, 6.09e-5),
			complex(0.01219875253423634378984109995893708152885, -0.1813040560401824664088425926165834355953e-7)},
		{complex(4.9e7, 5e-11),
			complex(0.1020408163265306334945473399689037886997e-7, -0.1041232819658476285651490827866174985330e-25)},
		{complex(5.1e7, 4.8e-11),
			complex(0.9803921568627452865036825956835185367356e-8, -0.9227220299884665067601095648451913375754e-26)},
		{complex(1e9, 2.4e-12),
			complex(0.5000000000000000002500000000000000003750e-9, -0.1200000000000000001800000188712838420241e-29)},
		{complex(1e11, 2.4e-14),
			complex(5.00000000000000000000025000000000000000000003e-12, -1.20000000000000000000018000000000000000000004e-36)},
		{complex(1e13, 2.4e-16),
			complex(5.00000000000000000000000002500000000000000000e-14, -1.20000000000000000000000001800000000000000000e-42)},
		{complex(1e300, 2.4e-303), complex(5e-301, 0)},
	}
	for _, tt := range tests {
		checkZ(t, "Dawson", tt.z, Dawson(tt.z), tt.want, 1e-13)
	}
}

// TestDawsonSpecialValues pins the IEEE special cases of Dawson.
func TestDawsonSpecialValues(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		name    string
		z, want complex128
	}{
		{"+inf on real axis", complex(inf, 0), complex(0, 0)},
		{"-inf on real axis", complex(-inf, 0), complex(negZero, 0)},
		{"+inf on imag axis", complex(0, inf), complex(0, inf)},
		{"-inf on imag axis", complex(0, -inf), complex(0, -inf)},
		{"inf+inf", complex(inf, inf), complex(nan, nan)},
		{"inf-inf", complex(inf, -inf), complex(nan, nan)},
		{"nan+nan", complex(nan, nan), complex(nan, nan)},
		{"nan on real axis", complex(nan, 0), complex(nan, 0)},
		{"nan on imag axis", complex(0, nan), complex(0, nan)},
		{"nan+inf", complex(nan, inf), complex(nan, nan)},
		{"inf+nan", complex(inf, nan), complex(nan, nan)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkZ(t, "Dawson", tt.z, Dawson(tt.z), tt.want, 1e-13)
		})
	}
}

// TestErfi checks a single off-axis vector. Erfi is a pure component
// rotation of Erf, so one vector suffices to pin the signs; the
// tolerance is tightened to 1e-15 accordingly.
func TestErfi(t *testing.T) {
	z := complex(1.234, 0.5678)
	want := complex(1.081032284405373149432716643834106923212, 1.926775520840916645838949402886591180834)
	checkZ(t, "Erfi", z, Erfi(z), want, 1e-15)
}

// TestErfiSpecialValues checks the axis limits of Erfi: real on the
// real axis with an exponential blowup to +-Inf, and the rotated erf
// limits on the imaginary axis.
func TestErfiSpecialValues(t *testing.T) {
	tests := []struct {
		name    string
		z, want complex128
	}{
		{"+inf on real axis", complex(inf, 0), complex(inf, 0)},
		{"-inf on real axis", complex(-inf, 0), complex(-inf, 0)},
		{"overflow on real axis", complex(27, 0), complex(inf, 0)},
		{"+inf on imag axis", complex(0, inf), complex(0, 1)},
		{"-inf on imag axis", complex(0, -inf), complex(0, -1)},
		{"nan on real axis", complex(nan, 0), complex(nan, 0)},
		{"nan+nan", complex(nan, nan), complex(nan, nan)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkZ(t, "Erfi", tt.z, Erfi(tt.z), tt.want, 1e-13)
		})
	}
}

// TestErfcx checks a single off-axis vector; Erfcx is the plain
// rotation w(iz), fully covered by the W vectors otherwise.
func TestErfcx(t *testing.T) {
	z := complex(1.234, 0.5678)
	want := complex(0.3382187479799972294747793561190487832579, -0.1116077470811648467464927471872945833154)
	checkZ(t, "Erfcx", z, Erfcx(z), want, 1e-13)
}

// TestErfcxSpecialValues checks the axis limits of Erfcx through the
// rotation onto the W special-value table.
func TestErfcxSpecialValues(t *testing.T) {
	tests := []struct {
		name    string
		z, want complex128
	}{
		{"+inf on real axis", complex(inf, 0), complex(0, 0)},
		{"-inf on real axis", complex(-inf, 0), complex(inf, 0)},
		{"nan on real axis", complex(nan, 0), complex(nan, 0)},
		{"nan+nan", complex(nan, nan), complex(nan, nan)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkZ(t, "Erfcx", tt.z, Erfcx(tt.z), tt.want, 1e-13)
		})
	}
}
